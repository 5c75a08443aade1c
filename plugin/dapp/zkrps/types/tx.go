package types

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
)

// 构造原始交易的 json 参数, hash/salt/proof 一律使用 hex 编码
type ZkRpsSwapFundTx struct {
	CommitHash      string `json:"commitHash"`
	Origin          string `json:"origin"`
	Pool            string `json:"pool"`
	AssetExec       string `json:"assetExec"`
	AssetSymbol     string `json:"assetSymbol"`
	RequestedAmount int64  `json:"requestedAmount"`
	RealizedAmount  int64  `json:"realizedAmount"`
	Fee             int64  `json:"fee"`
}

type ZkRpsTakerMoveTx struct {
	CommitHash string `json:"commitHash"`
	Move       int32  `json:"move"`
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
}

type ZkRpsLinkMatchTx struct {
	CommitHash string `json:"commitHash"`
	MatchId    int64  `json:"matchId"`
	Fee        int64  `json:"fee"`
}

type ZkRpsCreateMatchTx struct {
	CommitHash     string `json:"commitHash"`
	TimeoutSeconds int64  `json:"timeoutSeconds"`
	Fee            int64  `json:"fee"`
}

type ZkRpsJoinMatchTx struct {
	MatchId int64 `json:"matchId"`
	Fee     int64 `json:"fee"`
}

type ZkRpsRevealTx struct {
	MatchId   int64  `json:"matchId"`
	MakerMove int32  `json:"makerMove"`
	Salt      string `json:"salt"`
	Proof     string `json:"proof"`
	Fee       int64  `json:"fee"`
}

type ZkRpsForfeitTx struct {
	MatchId int64 `json:"matchId"`
	Fee     int64 `json:"fee"`
}

type ZkRpsRefundTx struct {
	CommitHash string `json:"commitHash"`
	Fee        int64  `json:"fee"`
}

func CreateRawSwapFundTx(cfg *types.Chain33Config, parm *ZkRpsSwapFundTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsSwapFund{
		CommitHash:      hash,
		Origin:          parm.Origin,
		Pool:            parm.Pool,
		AssetExec:       parm.AssetExec,
		AssetSymbol:     parm.AssetSymbol,
		RequestedAmount: parm.RequestedAmount,
		RealizedAmount:  parm.RealizedAmount,
	}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionSwapFund,
		Value: &ZkRpsAction_SwapFund{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawTakerMoveTx(cfg *types.Chain33Config, parm *ZkRpsTakerMoveTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsTakerMove{
		CommitHash: hash,
		Move:       parm.Move,
		Amount:     parm.Amount,
	}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionTakerMove,
		Value: &ZkRpsAction_TakerMove{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawLinkMatchTx(cfg *types.Chain33Config, parm *ZkRpsLinkMatchTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsLinkMatch{
		CommitHash: hash,
		MatchId:    parm.MatchId,
	}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionLinkMatch,
		Value: &ZkRpsAction_LinkMatch{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawCreateMatchTx(cfg *types.Chain33Config, parm *ZkRpsCreateMatchTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsCreateMatch{
		CommitHash:     hash,
		TimeoutSeconds: parm.TimeoutSeconds,
	}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionCreateMatch,
		Value: &ZkRpsAction_CreateMatch{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawJoinMatchTx(cfg *types.Chain33Config, parm *ZkRpsJoinMatchTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsJoinMatch{MatchId: parm.MatchId}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionJoinMatch,
		Value: &ZkRpsAction_JoinMatch{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawRevealTx(cfg *types.Chain33Config, parm *ZkRpsRevealTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	salt, err := common.FromHex(parm.Salt)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	proof, err := common.FromHex(parm.Proof)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsReveal{
		MatchId:   parm.MatchId,
		MakerMove: parm.MakerMove,
		Salt:      salt,
		Proof:     proof,
	}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionReveal,
		Value: &ZkRpsAction_Reveal{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawForfeitTx(cfg *types.Chain33Config, parm *ZkRpsForfeitTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsForfeit{MatchId: parm.MatchId}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionForfeit,
		Value: &ZkRpsAction_Forfeit{v},
	}
	return formatTx(cfg, action, parm.Fee)
}

func CreateRawRefundTx(cfg *types.Chain33Config, parm *ZkRpsRefundTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	hash, err := common.FromHex(parm.CommitHash)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	v := &ZkRpsRefund{CommitHash: hash}
	action := &ZkRpsAction{
		Ty:    ZkRpsActionRefund,
		Value: &ZkRpsAction_Refund{v},
	}
	return formatTx(cfg, action, parm.Fee)
}
