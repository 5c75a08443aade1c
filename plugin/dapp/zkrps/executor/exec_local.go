package executor

import (
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func isZkRpsLog(ty int32) bool {
	return ty >= zt.TyLogZkRpsGameCreated && ty <= zt.TyLogZkRpsRefunded
}

func (z *ZkRps) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := z.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if !isZkRpsLog(item.Ty) {
			continue
		}
		var rlog zt.ReceiptZkRps
		if err := types.Decode(item.Log, &rlog); err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		// 对局侧事件不带托管状态，不进托管索引
		if rlog.GameStatus == 0 {
			continue
		}
		set.KV = append(set.KV, z.updateIndex(&rlog)...)
	}
	return set, nil
}

func (z *ZkRps) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := z.DriverBase.ExecDelLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if !isZkRpsLog(item.Ty) {
			continue
		}
		var rlog zt.ReceiptZkRps
		if err := types.Decode(item.Log, &rlog); err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		if rlog.GameStatus == 0 {
			continue
		}
		//状态数据库由于默克尔树特性，之前生成的索引无效，故不需要回滚，只回滚localDB
		set.KV = append(set.KV, z.rollbackIndex(&rlog)...)
	}
	return set, nil
}

// updateIndex 为本次状态落点增加索引，并删除上一状态留下的索引
func (z *ZkRps) updateIndex(log *zt.ReceiptZkRps) (kvs []*types.KeyValue) {
	kvs = append(kvs, addGameStatusIndex(log.GameStatus, log.CommitHash, log.Index))
	kvs = append(kvs, addGameAddrIndex(log.GameStatus, log.Maker, log.CommitHash, log.Index))
	if log.Taker != "" {
		kvs = append(kvs, addGameAddrIndex(log.GameStatus, log.Taker, log.CommitHash, log.Index))
	}
	if log.PrevGameStatus != 0 {
		kvs = append(kvs, delGameStatusIndex(log.PrevGameStatus, log.PrevIndex))
		kvs = append(kvs, delGameAddrIndex(log.PrevGameStatus, log.Maker, log.PrevIndex))
		if log.Taker != "" {
			kvs = append(kvs, delGameAddrIndex(log.PrevGameStatus, log.Taker, log.PrevIndex))
		}
	}
	return kvs
}

// rollbackIndex 与 updateIndex 严格互逆
func (z *ZkRps) rollbackIndex(log *zt.ReceiptZkRps) (kvs []*types.KeyValue) {
	kvs = append(kvs, delGameStatusIndex(log.GameStatus, log.Index))
	kvs = append(kvs, delGameAddrIndex(log.GameStatus, log.Maker, log.Index))
	if log.Taker != "" {
		kvs = append(kvs, delGameAddrIndex(log.GameStatus, log.Taker, log.Index))
	}
	if log.PrevGameStatus != 0 {
		kvs = append(kvs, addGameStatusIndex(log.PrevGameStatus, log.CommitHash, log.PrevIndex))
		kvs = append(kvs, addGameAddrIndex(log.PrevGameStatus, log.Maker, log.CommitHash, log.PrevIndex))
		if log.Taker != "" {
			kvs = append(kvs, addGameAddrIndex(log.PrevGameStatus, log.Taker, log.CommitHash, log.PrevIndex))
		}
	}
	return kvs
}

func addGameStatusIndex(status int32, hash string, index int64) *types.KeyValue {
	record := &zt.GameRecord{CommitHash: hash, Index: index}
	return &types.KeyValue{Key: calcGameStatusIndexKey(status, index), Value: types.Encode(record)}
}

func delGameStatusIndex(status int32, index int64) *types.KeyValue {
	//value置nil,提交时，会自动执行删除操作
	return &types.KeyValue{Key: calcGameStatusIndexKey(status, index), Value: nil}
}

func addGameAddrIndex(status int32, addr, hash string, index int64) *types.KeyValue {
	record := &zt.GameRecord{CommitHash: hash, Index: index}
	return &types.KeyValue{Key: calcGameAddrIndexKey(status, addr, index), Value: types.Encode(record)}
}

func delGameAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcGameAddrIndexKey(status, addr, index), Value: nil}
}
