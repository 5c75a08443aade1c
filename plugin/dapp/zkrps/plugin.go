package zkrps

import (
	"github.com/33cn/chain33/pluginmgr"

	"github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/commands"
	"github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/executor"
	"github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/rpc"
	"github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     types.ZkRpsX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.ZkRpsCmd,
		RPC:      rpc.Init,
	})
}
