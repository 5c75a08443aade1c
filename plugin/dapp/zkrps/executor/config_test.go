package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func setManageConfig(db dbm.KV, key string, values ...string) {
	item := &types.ConfigItem{
		Key:   key,
		Value: &types.ConfigItem_Arr{Arr: &types.ArrayConfig{Value: values}},
	}
	db.Set([]byte(types.ManageKey(key)), types.Encode(item))
}

func TestGetConfValue(t *testing.T) {
	db, _ := dbm.NewGoMemDB("state", "", 100)

	// 没有配置时回退默认值
	assert.Equal(t, DefaultRefundTimeout, getConfValue(db, ConfNameRefundTimeout, DefaultRefundTimeout))

	setManageConfig(db, ConfNameRefundTimeout, "3600")
	assert.Equal(t, int64(3600), getConfValue(db, ConfNameRefundTimeout, DefaultRefundTimeout))

	// 数组取最后一位作为当前生效值
	setManageConfig(db, ConfNameRefundTimeout, "3600", "7200")
	assert.Equal(t, int64(7200), getConfValue(db, ConfNameRefundTimeout, DefaultRefundTimeout))

	// 脏数据回退默认值
	setManageConfig(db, ConfNameRefundTimeout, "not-a-number")
	assert.Equal(t, DefaultRefundTimeout, getConfValue(db, ConfNameRefundTimeout, DefaultRefundTimeout))
}

func TestIsAuthorizedRelay(t *testing.T) {
	db, _ := dbm.NewGoMemDB("state", "", 100)
	assert.False(t, isAuthorizedRelay(db, AddrC))

	setManageConfig(db, ConfNameRelay, AddrC)
	assert.True(t, isAuthorizedRelay(db, AddrC))
	assert.False(t, isAuthorizedRelay(db, AddrA))
}

// 授权中继可以替真实出资方转发注资, 托管记到出资方名下
func TestRelayFunding(t *testing.T) {
	e := setupEnv(t)
	setManageConfig(e.stateDB, ConfNameRelay, AddrC)

	salt := []byte("0123456789abcdef0123456789abcdef")
	hash := common.ToHex(commitment(salt, zt.MoveRock))

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyC, testAmount))
	game, err := readGame(e.stateDB, hash)
	assert.Nil(t, err)
	assert.Equal(t, AddrA, game.Maker)
	assert.Equal(t, testAmount, e.execAccount(AddrA).Frozen)
	assert.Equal(t, testAmount, readInt64(e.stateDB, contribKey(AddrA, testPool, "coins", "bty")))
}
