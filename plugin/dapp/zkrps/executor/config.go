package executor

import (
	"strconv"

	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"
)

// getConfValue 从 manage 合约写入的运行时配置读取整型参数，
// 配置是数组形式，取最后一位作为当前生效值；取不到一律回退默认值。
func getConfValue(db dbm.KV, key string, defaultValue int64) int64 {
	item, err := getConfigItem(db, key)
	if err != nil {
		return defaultValue
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return defaultValue
	}
	v, err := strconv.ParseInt(values[len(values)-1], 10, 64)
	if err != nil {
		zlog.Error("getConfValue", "key", key, "value", values[len(values)-1], "err", err)
		return defaultValue
	}
	return v
}

// isAuthorizedRelay 检查地址是否在 manage 配置的中继授权名单里
func isAuthorizedRelay(db dbm.KV, addr string) bool {
	item, err := getConfigItem(db, ConfNameRelay)
	if err != nil {
		return false
	}
	for _, v := range item.GetArr().GetValue() {
		if v == addr {
			return true
		}
	}
	return false
}

func getConfigItem(db dbm.KV, key string) (*types.ConfigItem, error) {
	value, err := db.Get([]byte(types.ManageKey(key)))
	if err != nil {
		return nil, err
	}
	var item types.ConfigItem
	if err := types.Decode(value, &item); err != nil {
		zlog.Error("getConfigItem", "decode key", key, "err", err)
		return nil, err
	}
	return &item, nil
}
