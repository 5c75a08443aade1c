package executor

import (
	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

const (
	ListDESC = int32(0)
	ListASC  = int32(1)

	DefaultCount = int64(20)
	MaxCount     = int64(100)

	// 未匹配的庄家押金可取回的等待时长，单位秒
	DefaultRefundTimeout = int64(24 * 3600)
	// 从对方出招开始计算的开奖有效时长，单位秒
	DefaultRevealTimeout = int64(24 * 3600)
	MinRevealTimeout     = int64(60)
	MaxRevealTimeout     = int64(30 * 24 * 3600)

	// 胜负局从总注中抽入奖池的万分比
	DefaultRaffleBasisPoints = int64(500)
	MaxRaffleBasisPoints     = int64(2000)

	MinStake = int64(1)
	MaxStake = int64(1e13)

	// 奖池资金挂在该派生地址的合约子账户下
	raffleAccountName = zt.ZkRpsX + "-raffle"
)

var (
	ConfNameRefundTimeout     = zt.ZkRpsX + ":" + "refundTimeout"
	ConfNameRevealTimeout     = zt.ZkRpsX + ":" + "revealTimeout"
	ConfNameRaffleBasisPoints = zt.ZkRpsX + ":" + "raffleBasisPoints"
	ConfNameMinStake          = zt.ZkRpsX + ":" + "minStake"
	ConfNameMaxStake          = zt.ZkRpsX + ":" + "maxStake"
	ConfNameDefaultCount      = zt.ZkRpsX + ":" + "defaultCount"
	ConfNameMaxCount          = zt.ZkRpsX + ":" + "maxCount"
	// manage 数组配置，授权的转发中继地址
	ConfNameRelay = zt.ZkRpsX + "-relay"
)
