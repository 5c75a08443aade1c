package executor

import (
	"github.com/33cn/chain33/common"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

// winner 是纯胜负函数：石头克剪刀，布克石头，剪刀克布，相同为平。
// 它同时被链下的证明方(决定证明什么)和链上的开奖逻辑(复核证明声称的结果)使用。
func winner(makerMove, takerMove int32) int32 {
	if makerMove == takerMove {
		return zt.ResultTie
	}
	switch makerMove {
	case zt.MoveRock:
		if takerMove == zt.MoveScissors {
			return zt.ResultMaker
		}
	case zt.MovePaper:
		if takerMove == zt.MoveRock {
			return zt.ResultMaker
		}
	case zt.MoveScissors:
		if takerMove == zt.MovePaper {
			return zt.ResultMaker
		}
	}
	return zt.ResultTaker
}

func validMove(move int32) bool {
	return move == zt.MoveRock || move == zt.MovePaper || move == zt.MoveScissors
}

// commitment 把隐藏的招式和盐绑定为定长摘要，在对方出招之前公布。
func commitment(salt []byte, move int32) []byte {
	data := make([]byte, 0, len(salt)+1)
	data = append(data, salt...)
	data = append(data, byte(move))
	return common.Sha256(data)
}
