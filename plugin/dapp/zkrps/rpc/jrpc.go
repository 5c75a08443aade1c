package rpc

import (
	"context"
	"encoding/hex"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func (c *Jrpc) ZkRpsSwapFundTx(parm *zt.ZkRpsSwapFundTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsSwapFund{
		CommitHash:      hash,
		Origin:          parm.Origin,
		Pool:            parm.Pool,
		AssetExec:       parm.AssetExec,
		AssetSymbol:     parm.AssetSymbol,
		RequestedAmount: parm.RequestedAmount,
		RealizedAmount:  parm.RealizedAmount,
	}
	reply, err := c.cli.SwapFund(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsTakerMoveTx(parm *zt.ZkRpsTakerMoveTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsTakerMove{
		CommitHash: hash,
		Move:       parm.Move,
		Amount:     parm.Amount,
	}
	reply, err := c.cli.TakerMove(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsLinkMatchTx(parm *zt.ZkRpsLinkMatchTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsLinkMatch{
		CommitHash: hash,
		MatchId:    parm.MatchId,
	}
	reply, err := c.cli.LinkMatch(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsCreateMatchTx(parm *zt.ZkRpsCreateMatchTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsCreateMatch{
		CommitHash:     hash,
		TimeoutSeconds: parm.TimeoutSeconds,
	}
	reply, err := c.cli.CreateMatch(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsJoinMatchTx(parm *zt.ZkRpsJoinMatchTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsJoinMatch{MatchId: parm.MatchId}
	reply, err := c.cli.JoinMatch(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsRevealTx(parm *zt.ZkRpsRevealTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	salt, err := common.FromHex(parm.Salt)
	if err != nil {
		return types.ErrInvalidParam
	}
	proof, err := common.FromHex(parm.Proof)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsReveal{
		MatchId:   parm.MatchId,
		MakerMove: parm.MakerMove,
		Salt:      salt,
		Proof:     proof,
	}
	reply, err := c.cli.Reveal(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsForfeitTx(parm *zt.ZkRpsForfeitTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsForfeit{MatchId: parm.MatchId}
	reply, err := c.cli.Forfeit(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) ZkRpsRefundTx(parm *zt.ZkRpsRefundTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &zt.ZkRpsRefund{CommitHash: hash}
	reply, err := c.cli.Refund(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}
