package plugin

import (
	_ "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps" //auto gen
)
