package executor

import (
	log "github.com/inconshreveable/log15"

	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

var zlog = log.New("module", "execs.zkrps")

func Init(name string, cfg *types.Chain33Config, sub []byte) {
	drivers.Register(cfg, GetName(), newZkRps, cfg.GetDappFork(zt.ZkRpsX, "Enable"))
}

type ZkRps struct {
	drivers.DriverBase
}

func newZkRps() drivers.Driver {
	z := &ZkRps{}
	z.SetChild(z)
	return z
}

func GetName() string {
	return newZkRps().GetName()
}

func (z *ZkRps) GetDriverName() string {
	return zt.ZkRpsX
}

func (z *ZkRps) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action zt.ZkRpsAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	zlog.Debug("exec zkrps tx", "ty", action.Ty)
	actiondb := NewAction(z, tx, index)
	if action.Ty == zt.ZkRpsActionSwapFund && action.GetSwapFund() != nil {
		return actiondb.SwapFund(action.GetSwapFund())
	} else if action.Ty == zt.ZkRpsActionTakerMove && action.GetTakerMove() != nil {
		return actiondb.TakerMove(action.GetTakerMove())
	} else if action.Ty == zt.ZkRpsActionLinkMatch && action.GetLinkMatch() != nil {
		return actiondb.LinkMatch(action.GetLinkMatch())
	} else if action.Ty == zt.ZkRpsActionCreateMatch && action.GetCreateMatch() != nil {
		return actiondb.CreateMatch(action.GetCreateMatch())
	} else if action.Ty == zt.ZkRpsActionJoinMatch && action.GetJoinMatch() != nil {
		return actiondb.JoinMatch(action.GetJoinMatch())
	} else if action.Ty == zt.ZkRpsActionReveal && action.GetReveal() != nil {
		return actiondb.Reveal(action.GetReveal())
	} else if action.Ty == zt.ZkRpsActionForfeit && action.GetForfeit() != nil {
		return actiondb.Forfeit(action.GetForfeit())
	} else if action.Ty == zt.ZkRpsActionRefund && action.GetRefund() != nil {
		return actiondb.Refund(action.GetRefund())
	}
	return nil, types.ErrActionNotSupport
}
