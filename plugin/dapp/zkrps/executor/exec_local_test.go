package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

// updateIndex 和 rollbackIndex 必须对每个键互逆
func TestIndexRollbackSymmetry(t *testing.T) {
	z := &ZkRps{}
	rlog := &zt.ReceiptZkRps{
		CommitHash:     "0xabcd",
		GameStatus:     zt.GameStatusWaitReveal,
		PrevGameStatus: zt.GameStatusWaitMove,
		Maker:          AddrA,
		Taker:          AddrB,
		Index:          200005,
		PrevIndex:      100003,
	}

	update := z.updateIndex(rlog)
	rollback := z.rollbackIndex(rlog)
	assert.Equal(t, len(update), len(rollback))

	added := make(map[string]bool)
	deleted := make(map[string]bool)
	for _, kv := range update {
		if kv.Value != nil {
			added[string(kv.Key)] = true
		} else {
			deleted[string(kv.Key)] = true
		}
	}
	for _, kv := range rollback {
		if kv.Value == nil {
			assert.True(t, added[string(kv.Key)], "rollback must delete key added by update: %s", string(kv.Key))
		} else {
			assert.True(t, deleted[string(kv.Key)], "rollback must restore key deleted by update: %s", string(kv.Key))
		}
	}
}

// 首次落点没有上一状态, 只增不删
func TestIndexFirstStatus(t *testing.T) {
	z := &ZkRps{}
	rlog := &zt.ReceiptZkRps{
		CommitHash: "0xabcd",
		GameStatus: zt.GameStatusWaitTaker,
		Maker:      AddrA,
		Index:      100003,
	}
	for _, kv := range z.updateIndex(rlog) {
		assert.NotNil(t, kv.Value)
	}
}
