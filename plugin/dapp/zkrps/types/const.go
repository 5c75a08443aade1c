package types

// zkrps action ty
const (
	ZkRpsActionSwapFund = iota + 1
	ZkRpsActionTakerMove
	ZkRpsActionLinkMatch
	ZkRpsActionCreateMatch
	ZkRpsActionJoinMatch
	ZkRpsActionReveal
	ZkRpsActionForfeit
	ZkRpsActionRefund
)

// receipt log ty
const (
	TyLogZkRpsGameCreated    = 950
	TyLogZkRpsTakerJoined    = 951
	TyLogZkRpsMoveRegistered = 952
	TyLogZkRpsMatchCreated   = 953
	TyLogZkRpsMatchJoined    = 954
	TyLogZkRpsLinked         = 955
	TyLogZkRpsRevealed       = 956
	TyLogZkRpsForfeited      = 957
	TyLogZkRpsRefunded       = 958
)

// 招式取值，0 表示尚未出招
const (
	MoveUnset    = int32(0)
	MoveRock     = int32(1)
	MovePaper    = int32(2)
	MoveScissors = int32(3)
)

// 对局结果
const (
	ResultUnset = int32(0)
	ResultTie   = int32(1)
	ResultMaker = int32(2)
	ResultTaker = int32(3)
)

// 对局记录状态机
const (
	MatchStatusAwaitingTaker  = int32(1)
	MatchStatusCommitted      = int32(2)
	MatchStatusAwaitingReveal = int32(3)
	MatchStatusCompleted      = int32(4)
	MatchStatusForfeited      = int32(5)
)

// 托管记录的阶段，只用于事件和索引
const (
	GameStatusWaitTaker  = int32(1)
	GameStatusWaitMove   = int32(2)
	GameStatusWaitReveal = int32(3)
	GameStatusResolved   = int32(4)
)

// query func name
const (
	FuncNameGetPendingGame          = "GetPendingGame"
	FuncNameGetMatch                = "GetMatch"
	FuncNameGetMatchId              = "GetMatchId"
	FuncNameGetContribution         = "GetContribution"
	FuncNameGetRafflePool           = "GetRafflePool"
	FuncNameGetRefundTimeout        = "GetRefundTimeout"
	FuncNameListGameByStatusAndAddr = "ListGameByStatusAndAddr"
	FuncNameListWaitingForTaker     = "ListWaitingForTaker"
	FuncNameListWaitingForReveal    = "ListWaitingForReveal"
)

const (
	ZkRpsX = "zkrps"
)

var (
	ExecerZkRps = []byte(ZkRpsX)
)
