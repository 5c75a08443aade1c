package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func TestTranscriptVerifier(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	pub := &zt.RpsPublicInputs{
		MakerMove:  zt.MoveRock,
		TakerMove:  zt.MoveScissors,
		Winner:     zt.ResultMaker,
		CommitHash: commitment(salt, zt.MoveRock),
	}
	v := transcriptVerifier{}
	proof := ProofTranscript(pub)
	assert.Nil(t, v.Verify(pub, proof))

	// 篡改任一公开输入后证明失效
	bad := *pub
	bad.Winner = zt.ResultTaker
	assert.Equal(t, zt.ErrProofRejected, v.Verify(&bad, proof))

	bad = *pub
	bad.TakerMove = zt.MovePaper
	assert.Equal(t, zt.ErrProofRejected, v.Verify(&bad, proof))

	assert.Equal(t, zt.ErrProofRejected, v.Verify(pub, nil))
	assert.Equal(t, zt.ErrProofRejected, v.Verify(nil, proof))
	assert.Equal(t, zt.ErrProofRejected, v.Verify(pub, []byte("garbage")))
}

func TestRegisterVerifierNil(t *testing.T) {
	assert.Panics(t, func() { RegisterVerifier(nil) })
}
