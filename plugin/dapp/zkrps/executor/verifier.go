package executor

import (
	"bytes"

	"github.com/33cn/chain33/common"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

// Verifier 校验一份证明确实是对 (makerMove, takerMove, winner) 这组公开输入
// 诚实计算的。结算逻辑只依赖这个窄接口，不关心具体的证明后端；公开输入里
// 必须带上与承诺校验相同的招式取值和承诺哈希，防止证明方偷换输入。
type Verifier interface {
	Verify(pub *zt.RpsPublicInputs, proof []byte) error
}

var proofVerifier Verifier = transcriptVerifier{}

// RegisterVerifier 注入真实的证明后端，必须在节点启动阶段调用。
func RegisterVerifier(v Verifier) {
	if v == nil {
		panic("zkrps: register nil verifier")
	}
	proofVerifier = v
}

const proofDomainTag = "zkrps-rps-proof-v1"

// transcriptVerifier 是缺省后端：把全部公开输入哈希成一份绑定记录并与
// 证明比对。它保证输入绑定的形状与真实后端一致，方便联调与测试。
type transcriptVerifier struct{}

func (transcriptVerifier) Verify(pub *zt.RpsPublicInputs, proof []byte) error {
	if pub == nil || len(proof) == 0 {
		return zt.ErrProofRejected
	}
	if !bytes.Equal(proof, ProofTranscript(pub)) {
		return zt.ErrProofRejected
	}
	return nil
}

// ProofTranscript 计算缺省后端接受的证明串，证明方在链下调用。
func ProofTranscript(pub *zt.RpsPublicInputs) []byte {
	data := make([]byte, 0, len(proofDomainTag)+len(pub.CommitHash)+3)
	data = append(data, []byte(proofDomainTag)...)
	data = append(data, pub.CommitHash...)
	data = append(data, byte(pub.MakerMove), byte(pub.TakerMove), byte(pub.Winner))
	return common.Sha256(data)
}
