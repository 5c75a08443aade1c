package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func TestWinnerCycle(t *testing.T) {
	assert.Equal(t, zt.ResultMaker, winner(zt.MoveRock, zt.MoveScissors))
	assert.Equal(t, zt.ResultMaker, winner(zt.MovePaper, zt.MoveRock))
	assert.Equal(t, zt.ResultMaker, winner(zt.MoveScissors, zt.MovePaper))

	assert.Equal(t, zt.ResultTaker, winner(zt.MoveScissors, zt.MoveRock))
	assert.Equal(t, zt.ResultTaker, winner(zt.MoveRock, zt.MovePaper))
	assert.Equal(t, zt.ResultTaker, winner(zt.MovePaper, zt.MoveScissors))

	assert.Equal(t, zt.ResultTie, winner(zt.MoveRock, zt.MoveRock))
	assert.Equal(t, zt.ResultTie, winner(zt.MovePaper, zt.MovePaper))
	assert.Equal(t, zt.ResultTie, winner(zt.MoveScissors, zt.MoveScissors))
}

// 交换双方招式后，非平局的结果必须反转
func TestWinnerRoleSwap(t *testing.T) {
	moves := []int32{zt.MoveRock, zt.MovePaper, zt.MoveScissors}
	for _, m := range moves {
		for _, n := range moves {
			r1 := winner(m, n)
			r2 := winner(n, m)
			if m == n {
				assert.Equal(t, zt.ResultTie, r1)
				assert.Equal(t, zt.ResultTie, r2)
				continue
			}
			assert.NotEqual(t, r1, r2)
		}
	}
}

func TestValidMove(t *testing.T) {
	assert.False(t, validMove(zt.MoveUnset))
	assert.True(t, validMove(zt.MoveRock))
	assert.True(t, validMove(zt.MovePaper))
	assert.True(t, validMove(zt.MoveScissors))
	assert.False(t, validMove(4))
	assert.False(t, validMove(-1))
}

func TestCommitmentBinding(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	c1 := commitment(salt, zt.MoveRock)
	c2 := commitment(salt, zt.MovePaper)
	assert.Equal(t, 32, len(c1))
	assert.NotEqual(t, c1, c2)

	salt2 := []byte("fedcba9876543210fedcba9876543210")
	c3 := commitment(salt2, zt.MoveRock)
	assert.NotEqual(t, c1, c3)

	assert.Equal(t, c1, commitment(salt, zt.MoveRock))
}
