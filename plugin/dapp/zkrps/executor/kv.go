package executor

import (
	"fmt"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

/*
 状态数据库(mavl)的键布局：
   game-<hash hex>          托管侧 PendingGame
   match-%018d              对局侧 MatchRecord
   match-seq                对局号自增计数器
   link-h-<hash hex>        承诺哈希 -> 对局号
   link-m-%018d             对局号 -> 承诺哈希
   contrib-<addr>:<pool>:<exec>.<symbol>   出资账本
   raffle-<pool>:<exec>.<symbol>           奖池余额

 localDB 的索引键布局与老的猜拳合约一致：
   zkrps-status:<status>:%018d
   zkrps-addr:<status>:<addr>:%018d
 value 均为 GameRecord, 状态变更时新增本状态索引并删除上一状态的索引。
*/

func keyPrefix() []byte {
	return []byte("mavl-" + zt.ZkRpsX + "-")
}

func gameKey(hash string) []byte {
	return append(keyPrefix(), []byte("game-"+hash)...)
}

func matchKey(id int64) []byte {
	return append(keyPrefix(), []byte(fmt.Sprintf("match-%018d", id))...)
}

func matchSeqKey() []byte {
	return append(keyPrefix(), []byte("match-seq")...)
}

func linkHashKey(hash string) []byte {
	return append(keyPrefix(), []byte("link-h-"+hash)...)
}

func linkMatchKey(id int64) []byte {
	return append(keyPrefix(), []byte(fmt.Sprintf("link-m-%018d", id))...)
}

func contribKey(addr, pool, assetExec, assetSymbol string) []byte {
	return append(keyPrefix(), []byte(fmt.Sprintf("contrib-%s:%s:%s.%s", addr, pool, assetExec, assetSymbol))...)
}

func raffleKey(pool, assetExec, assetSymbol string) []byte {
	return append(keyPrefix(), []byte(fmt.Sprintf("raffle-%s:%s.%s", pool, assetExec, assetSymbol))...)
}

func calcGameStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("%s-status:%d:%018d", zt.ZkRpsX, status, index))
}

func calcGameStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("%s-status:%d:", zt.ZkRpsX, status))
}

func calcGameAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("%s-addr:%d:%s:%018d", zt.ZkRpsX, status, addr, index))
}

func calcGameAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("%s-addr:%d:%s:", zt.ZkRpsX, status, addr))
}
