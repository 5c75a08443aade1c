package types

import (
	"encoding/json"
	"reflect"

	"github.com/33cn/chain33/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", ZkRpsX)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerZkRps)
	types.RegFork(ZkRpsX, InitFork)
	types.RegExec(ZkRpsX, InitExecutor)
}

// InitFork init fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(ZkRpsX, "Enable", 0)
}

// InitExecutor init executor type
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(ZkRpsX, NewType(cfg))
}

func NewType(cfg *types.Chain33Config) *ZkRpsType {
	c := &ZkRpsType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// exec
type ZkRpsType struct {
	types.ExecTypeBase
}

func (t *ZkRpsType) GetName() string {
	return ZkRpsX
}

func (t *ZkRpsType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogZkRpsGameCreated:    {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsGameCreated"},
		TyLogZkRpsTakerJoined:    {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsTakerJoined"},
		TyLogZkRpsMoveRegistered: {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsMoveRegistered"},
		TyLogZkRpsMatchCreated:   {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsMatchCreated"},
		TyLogZkRpsMatchJoined:    {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsMatchJoined"},
		TyLogZkRpsLinked:         {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsLinked"},
		TyLogZkRpsRevealed:       {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsRevealed"},
		TyLogZkRpsForfeited:      {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsForfeited"},
		TyLogZkRpsRefunded:       {reflect.TypeOf(ReceiptZkRps{}), "LogZkRpsRefunded"},
	}
}

func (t *ZkRpsType) GetPayload() types.Message {
	return &ZkRpsAction{}
}

func (t *ZkRpsType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"SwapFund":    ZkRpsActionSwapFund,
		"TakerMove":   ZkRpsActionTakerMove,
		"LinkMatch":   ZkRpsActionLinkMatch,
		"CreateMatch": ZkRpsActionCreateMatch,
		"JoinMatch":   ZkRpsActionJoinMatch,
		"Reveal":      ZkRpsActionReveal,
		"Forfeit":     ZkRpsActionForfeit,
		"Refund":      ZkRpsActionRefund,
	}
}

func (t ZkRpsType) CreateTx(action string, message json.RawMessage) (*types.Transaction, error) {
	tlog.Debug("zkrps.CreateTx", "action", action)
	cfg := t.GetConfig()
	switch action {
	case "SwapFund":
		var param ZkRpsSwapFundTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawSwapFundTx(cfg, &param)
	case "TakerMove":
		var param ZkRpsTakerMoveTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawTakerMoveTx(cfg, &param)
	case "LinkMatch":
		var param ZkRpsLinkMatchTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawLinkMatchTx(cfg, &param)
	case "CreateMatch":
		var param ZkRpsCreateMatchTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawCreateMatchTx(cfg, &param)
	case "JoinMatch":
		var param ZkRpsJoinMatchTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawJoinMatchTx(cfg, &param)
	case "Reveal":
		var param ZkRpsRevealTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawRevealTx(cfg, &param)
	case "Forfeit":
		var param ZkRpsForfeitTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawForfeitTx(cfg, &param)
	case "Refund":
		var param ZkRpsRefundTx
		if err := json.Unmarshal(message, &param); err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawRefundTx(cfg, &param)
	}
	return nil, types.ErrNotSupport
}

func formatTx(cfg *types.Chain33Config, payload *ZkRpsAction, fee int64) (*types.Transaction, error) {
	name := cfg.ExecName(ZkRpsX)
	tx := &types.Transaction{
		Execer:  []byte(name),
		Payload: types.Encode(payload),
		Fee:     fee,
	}
	return types.FormatTx(cfg, name, tx)
}
