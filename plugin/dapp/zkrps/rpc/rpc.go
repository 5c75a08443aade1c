package rpc

import (
	context "golang.org/x/net/context"

	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func (c *channelClient) unsignTx(action *zt.ZkRpsAction) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(zt.ZkRpsX), types.Encode(action))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) SwapFund(ctx context.Context, head *zt.ZkRpsSwapFund) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionSwapFund,
		Value: &zt.ZkRpsAction_SwapFund{head},
	})
}

func (c *channelClient) TakerMove(ctx context.Context, head *zt.ZkRpsTakerMove) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionTakerMove,
		Value: &zt.ZkRpsAction_TakerMove{head},
	})
}

func (c *channelClient) LinkMatch(ctx context.Context, head *zt.ZkRpsLinkMatch) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionLinkMatch,
		Value: &zt.ZkRpsAction_LinkMatch{head},
	})
}

func (c *channelClient) CreateMatch(ctx context.Context, head *zt.ZkRpsCreateMatch) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionCreateMatch,
		Value: &zt.ZkRpsAction_CreateMatch{head},
	})
}

func (c *channelClient) JoinMatch(ctx context.Context, head *zt.ZkRpsJoinMatch) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionJoinMatch,
		Value: &zt.ZkRpsAction_JoinMatch{head},
	})
}

func (c *channelClient) Reveal(ctx context.Context, head *zt.ZkRpsReveal) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionReveal,
		Value: &zt.ZkRpsAction_Reveal{head},
	})
}

func (c *channelClient) Forfeit(ctx context.Context, head *zt.ZkRpsForfeit) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionForfeit,
		Value: &zt.ZkRpsAction_Forfeit{head},
	})
}

func (c *channelClient) Refund(ctx context.Context, head *zt.ZkRpsRefund) (*types.UnsignTx, error) {
	return c.unsignTx(&zt.ZkRpsAction{
		Ty:    zt.ZkRpsActionRefund,
		Value: &zt.ZkRpsAction_Refund{head},
	})
}
