package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/queue"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

var (
	PrivKeyA = "0x6da92a632ab7deb67d38c0f6560bcfed28167998f6496db64c258d5e8393a81b" // 1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4
	PrivKeyB = "0x19c069234f9d3e61135fefbeb7791b149cdf6af536f26bebb310d4cd22c3fee4" // 1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR
	PrivKeyC = "0x7a80a1f75d7360c6123c32a78ecf978c1ac55636f87892df38d8b85a9aeff115" // 1NLHPEcbTWWxxU3dGUZBhayjrCHD3psX7k
	AddrA    = "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4"
	AddrB    = "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR"
	AddrC    = "1NLHPEcbTWWxxU3dGUZBhayjrCHD3psX7k"

	testPool   = "pool-a"
	testTotal  = 1000 * types.DefaultCoinPrecision
	testAmount = 100 * types.DefaultCoinPrecision
	baseTime   = int64(1600000000)
)

type testEnv struct {
	cfg     *types.Chain33Config
	stateDB dbm.KV
	driver  drivers.Driver
	execAdr string
}

func setupEnv(t *testing.T) *testEnv {
	cfg := types.NewChain33Config(types.GetDefaultCfgstring())
	cfg.SetTitleOnlyForTest("chain33")
	stateDB, err := dbm.NewGoMemDB("state", "", 100)
	assert.Nil(t, err)
	execAdr := address.ExecAddress(zt.ZkRpsX)

	acc := account.NewCoinsAccount(cfg)
	acc.SetDB(stateDB)
	acc.SaveExecAccount(execAdr, &types.Account{Balance: testTotal, Addr: AddrA})
	acc.SaveExecAccount(execAdr, &types.Account{Balance: testTotal, Addr: AddrB})

	q := queue.New("channel")
	q.SetConfig(cfg)
	api, err := client.New(q.Client(), nil)
	assert.Nil(t, err)

	driver := newZkRps()
	driver.SetAPI(api)
	driver.SetEnv(1, baseTime, 0)
	driver.SetStateDB(stateDB)
	return &testEnv{cfg: cfg, stateDB: stateDB, driver: driver, execAdr: execAdr}
}

func (e *testEnv) execAccount(addr string) *types.Account {
	acc := account.NewCoinsAccount(e.cfg)
	acc.SetDB(e.stateDB)
	return acc.LoadExecAccount(addr, e.execAdr)
}

func signTx(tx *types.Transaction, hexPrivKey string) (*types.Transaction, error) {
	signType := types.SECP256K1
	c, err := crypto.New(types.GetSignName(zt.ZkRpsX, signType))
	if err != nil {
		return tx, err
	}
	bytes, err := common.FromHex(hexPrivKey)
	if err != nil {
		return tx, err
	}
	privKey, err := c.PrivKeyFromBytes(bytes)
	if err != nil {
		return tx, err
	}
	tx.Sign(int32(signType), privKey)
	return tx, nil
}

func (e *testEnv) fund(t *testing.T, hash, origin, privKey string, amount int64) error {
	tx, err := zt.CreateRawSwapFundTx(e.cfg, &zt.ZkRpsSwapFundTx{
		CommitHash:      hash,
		Origin:          origin,
		Pool:            testPool,
		AssetExec:       "coins",
		AssetSymbol:     "bty",
		RequestedAmount: amount,
		RealizedAmount:  amount,
	})
	assert.Nil(t, err)
	tx, err = signTx(tx, privKey)
	assert.Nil(t, err)
	_, err = e.driver.Exec(tx, 0)
	return err
}

func (e *testEnv) takerMove(t *testing.T, hash, privKey string, move int32) error {
	tx, err := zt.CreateRawTakerMoveTx(e.cfg, &zt.ZkRpsTakerMoveTx{CommitHash: hash, Move: move})
	assert.Nil(t, err)
	tx, err = signTx(tx, privKey)
	assert.Nil(t, err)
	_, err = e.driver.Exec(tx, 0)
	return err
}

func (e *testEnv) reveal(t *testing.T, matchId int64, move int32, salt, proof []byte, privKey string) error {
	tx, err := zt.CreateRawRevealTx(e.cfg, &zt.ZkRpsRevealTx{
		MatchId:   matchId,
		MakerMove: move,
		Salt:      common.ToHex(salt),
		Proof:     common.ToHex(proof),
	})
	assert.Nil(t, err)
	tx, err = signTx(tx, privKey)
	assert.Nil(t, err)
	_, err = e.driver.Exec(tx, 0)
	return err
}

func proofFor(commitHash []byte, makerMove, takerMove int32) []byte {
	return ProofTranscript(&zt.RpsPublicInputs{
		MakerMove:  makerMove,
		TakerMove:  takerMove,
		Winner:     winner(makerMove, takerMove),
		CommitHash: commitHash,
	})
}

func TestZkRpsFullMatchMakerWins(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	commit := commitment(salt, zt.MoveRock)
	hash := common.ToHex(commit)

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
	game, err := readGame(e.stateDB, hash)
	assert.Nil(t, err)
	assert.Equal(t, zt.GameStatusWaitTaker, game.Status)
	assert.Equal(t, testAmount, game.MakerContribution)
	assert.Equal(t, testAmount, e.execAccount(AddrA).Frozen)

	assert.Nil(t, e.fund(t, hash, AddrB, PrivKeyB, testAmount))
	game, _ = readGame(e.stateDB, hash)
	assert.Equal(t, zt.GameStatusWaitMove, game.Status)
	assert.True(t, game.TakerJoined)
	assert.Equal(t, AddrB, game.Taker)

	// 两个位置都满之后继续注资被拒绝
	err = e.fund(t, hash, AddrC, PrivKeyC, testAmount)
	assert.Equal(t, zt.ErrGameSlotsFull, err)

	assert.Nil(t, e.takerMove(t, hash, PrivKeyB, zt.MoveScissors))
	game, _ = readGame(e.stateDB, hash)
	assert.Equal(t, zt.GameStatusWaitReveal, game.Status)
	matchId, ok := getLinkByHash(e.stateDB, hash)
	assert.True(t, ok)
	match, err := readMatch(e.stateDB, matchId)
	assert.Nil(t, err)
	assert.Equal(t, zt.MatchStatusAwaitingReveal, match.Status)
	assert.Equal(t, zt.MoveScissors, match.TakerMoveClear)

	// 承诺绑定错误的招式开不了奖
	badProof := proofFor(commit, zt.MovePaper, zt.MoveScissors)
	err = e.reveal(t, matchId, zt.MovePaper, salt, badProof, PrivKeyA)
	assert.Equal(t, zt.ErrCommitMismatch, err)

	proof := proofFor(commit, zt.MoveRock, zt.MoveScissors)
	assert.Nil(t, e.reveal(t, matchId, zt.MoveRock, salt, proof, PrivKeyA))

	skim := 2 * testAmount * DefaultRaffleBasisPoints / 10000
	assert.Equal(t, testTotal+testAmount-skim, e.execAccount(AddrA).Balance)
	assert.Equal(t, int64(0), e.execAccount(AddrA).Frozen)
	assert.Equal(t, testTotal-testAmount, e.execAccount(AddrB).Balance)
	assert.Equal(t, int64(0), e.execAccount(AddrB).Frozen)
	assert.Equal(t, skim, e.execAccount(raffleAddr()).Balance)
	assert.Equal(t, skim, readInt64(e.stateDB, raffleKey(testPool, "coins", "bty")))

	game, _ = readGame(e.stateDB, hash)
	assert.True(t, game.Resolved)
	match, _ = readMatch(e.stateDB, matchId)
	assert.Equal(t, zt.MatchStatusCompleted, match.Status)
	assert.Equal(t, zt.ResultMaker, match.Winner)

	// 结算只能发生一次
	err = e.reveal(t, matchId, zt.MoveRock, salt, proof, PrivKeyA)
	assert.Equal(t, zt.ErrMatchStatus, err)

	// 出资账本清零
	assert.Equal(t, int64(0), readInt64(e.stateDB, contribKey(AddrA, testPool, "coins", "bty")))
	assert.Equal(t, int64(0), readInt64(e.stateDB, contribKey(AddrB, testPool, "coins", "bty")))
}

func TestZkRpsTie(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("fedcba9876543210fedcba9876543210")
	commit := commitment(salt, zt.MovePaper)
	hash := common.ToHex(commit)

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
	assert.Nil(t, e.fund(t, hash, AddrB, PrivKeyB, testAmount))
	assert.Nil(t, e.takerMove(t, hash, PrivKeyB, zt.MovePaper))

	matchId, _ := getLinkByHash(e.stateDB, hash)
	proof := proofFor(commit, zt.MovePaper, zt.MovePaper)
	assert.Nil(t, e.reveal(t, matchId, zt.MovePaper, salt, proof, PrivKeyA))

	// 平局双方全额取回, 奖池不抽成
	assert.Equal(t, testTotal, e.execAccount(AddrA).Balance)
	assert.Equal(t, testTotal, e.execAccount(AddrB).Balance)
	assert.Equal(t, int64(0), e.execAccount(raffleAddr()).Balance)

	match, _ := readMatch(e.stateDB, matchId)
	assert.Equal(t, zt.ResultTie, match.Winner)
}

func TestZkRpsForfeit(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	commit := commitment(salt, zt.MoveRock)
	hash := common.ToHex(commit)

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
	assert.Nil(t, e.fund(t, hash, AddrB, PrivKeyB, testAmount))
	assert.Nil(t, e.takerMove(t, hash, PrivKeyB, zt.MovePaper))
	matchId, _ := getLinkByHash(e.stateDB, hash)

	forfeitTx := func(privKey string) error {
		tx, err := zt.CreateRawForfeitTx(e.cfg, &zt.ZkRpsForfeitTx{MatchId: matchId})
		assert.Nil(t, err)
		tx, err = signTx(tx, privKey)
		assert.Nil(t, err)
		_, err = e.driver.Exec(tx, 0)
		return err
	}

	// 倒计时未到不能判胜
	assert.Equal(t, zt.ErrRevealDeadlineNotOver, forfeitTx(PrivKeyB))

	e.driver.SetEnv(2, baseTime+DefaultRevealTimeout+1, 0)
	// 只有闲家可以判胜
	assert.Equal(t, zt.ErrNotYourGame, forfeitTx(PrivKeyA))
	assert.Nil(t, forfeitTx(PrivKeyB))

	skim := 2 * testAmount * DefaultRaffleBasisPoints / 10000
	assert.Equal(t, testTotal+testAmount-skim, e.execAccount(AddrB).Balance)
	assert.Equal(t, testTotal-testAmount, e.execAccount(AddrA).Balance)
	assert.Equal(t, skim, e.execAccount(raffleAddr()).Balance)

	match, _ := readMatch(e.stateDB, matchId)
	assert.Equal(t, zt.MatchStatusForfeited, match.Status)
	assert.Equal(t, zt.ResultTaker, match.Winner)

	// 判胜后不能再开奖
	proof := proofFor(commit, zt.MoveRock, zt.MovePaper)
	err := e.reveal(t, matchId, zt.MoveRock, salt, proof, PrivKeyA)
	assert.Equal(t, zt.ErrMatchStatus, err)
}

func TestZkRpsRefund(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	hash := common.ToHex(commitment(salt, zt.MoveScissors))

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))

	refundTx := func(privKey string) error {
		tx, err := zt.CreateRawRefundTx(e.cfg, &zt.ZkRpsRefundTx{CommitHash: hash})
		assert.Nil(t, err)
		tx, err = signTx(tx, privKey)
		assert.Nil(t, err)
		_, err = e.driver.Exec(tx, 0)
		return err
	}

	assert.Equal(t, zt.ErrRefundTimeoutNotOver, refundTx(PrivKeyA))

	e.driver.SetEnv(2, baseTime+DefaultRefundTimeout+1, 0)
	assert.Equal(t, zt.ErrNotYourGame, refundTx(PrivKeyB))
	assert.Nil(t, refundTx(PrivKeyA))

	assert.Equal(t, testTotal, e.execAccount(AddrA).Balance)
	assert.Equal(t, int64(0), e.execAccount(AddrA).Frozen)
	assert.Equal(t, int64(0), readInt64(e.stateDB, contribKey(AddrA, testPool, "coins", "bty")))

	assert.Equal(t, zt.ErrGameResolved, refundTx(PrivKeyA))
}

func TestZkRpsLinkTable(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	hash1 := common.ToHex(commitment(salt, zt.MoveRock))
	hash2 := common.ToHex(commitment(salt, zt.MovePaper))

	assert.Nil(t, e.fund(t, hash1, AddrA, PrivKeyA, testAmount))
	assert.Nil(t, e.fund(t, hash2, AddrA, PrivKeyA, testAmount))

	createMatch := func(hash, privKey string) error {
		tx, err := zt.CreateRawCreateMatchTx(e.cfg, &zt.ZkRpsCreateMatchTx{CommitHash: hash})
		assert.Nil(t, err)
		tx, err = signTx(tx, privKey)
		assert.Nil(t, err)
		_, err = e.driver.Exec(tx, 0)
		return err
	}
	link := func(hash string, matchId int64, privKey string) error {
		tx, err := zt.CreateRawLinkMatchTx(e.cfg, &zt.ZkRpsLinkMatchTx{CommitHash: hash, MatchId: matchId})
		assert.Nil(t, err)
		tx, err = signTx(tx, privKey)
		assert.Nil(t, err)
		_, err = e.driver.Exec(tx, 0)
		return err
	}

	assert.Equal(t, zt.ErrNotYourGame, createMatch(hash1, PrivKeyB))
	assert.Nil(t, createMatch(hash1, PrivKeyA))
	match1, ok := getLinkByHash(e.stateDB, hash1)
	assert.True(t, ok)

	// 同一组链接重复提交是幂等成功
	assert.Nil(t, link(hash1, match1, PrivKeyA))
	// 任何一侧指向别处都是冲突
	assert.Equal(t, zt.ErrLinkConflict, link(hash2, match1, PrivKeyA))
	assert.Equal(t, zt.ErrLinkConflict, createMatch(hash1, PrivKeyA))

	// 对局侧占位
	joinTx := func(matchId int64, privKey string) error {
		tx, err := zt.CreateRawJoinMatchTx(e.cfg, &zt.ZkRpsJoinMatchTx{MatchId: matchId})
		assert.Nil(t, err)
		tx, err = signTx(tx, privKey)
		assert.Nil(t, err)
		_, err = e.driver.Exec(tx, 0)
		return err
	}
	assert.Equal(t, zt.ErrSelfMatch, joinTx(match1, PrivKeyA))
	assert.Nil(t, joinTx(match1, PrivKeyB))
	record, _ := readMatch(e.stateDB, match1)
	assert.Equal(t, zt.MatchStatusCommitted, record.Status)
	assert.Equal(t, AddrB, record.Taker)
	assert.Equal(t, zt.ErrMatchStatus, joinTx(match1, PrivKeyC))

	// 托管侧闲家注资并出招后, 已链接的对局直接进入等待开奖
	assert.Nil(t, e.fund(t, hash1, AddrB, PrivKeyB, testAmount))
	assert.Nil(t, e.takerMove(t, hash1, PrivKeyB, zt.MoveScissors))
	record, _ = readMatch(e.stateDB, match1)
	assert.Equal(t, zt.MatchStatusAwaitingReveal, record.Status)
	assert.True(t, record.RevealDeadline > baseTime)
}

func TestZkRpsOriginRules(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	hash := common.ToHex(commitment(salt, zt.MoveRock))

	// origin 缺失或非法一律拒绝
	assert.Equal(t, zt.ErrOriginMissing, e.fund(t, hash, "", PrivKeyA, testAmount))
	assert.Equal(t, zt.ErrOriginInvalid, e.fund(t, hash, "not-an-address", PrivKeyA, testAmount))
	// 未授权的签名者不能替别人注资
	assert.Equal(t, zt.ErrRelayNotAllowed, e.fund(t, hash, AddrB, PrivKeyA, testAmount))

	// 金额越界
	assert.Equal(t, zt.ErrZeroContribution, e.fund(t, hash, AddrA, PrivKeyA, 0))
	assert.Equal(t, zt.ErrStakeOutOfRange, e.fund(t, hash, AddrA, PrivKeyA, MaxStake+1))

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
}

func TestZkRpsTakerMoveGuards(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	hash := common.ToHex(commitment(salt, zt.MoveRock))

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
	// 闲家未注资时不能出招
	assert.Equal(t, zt.ErrTakerNotJoined, e.takerMove(t, hash, PrivKeyB, zt.MoveRock))

	assert.Nil(t, e.fund(t, hash, AddrB, PrivKeyB, testAmount))
	// 只有闲家本人能出招
	assert.Equal(t, zt.ErrNotYourGame, e.takerMove(t, hash, PrivKeyC, zt.MoveRock))
	assert.Equal(t, zt.ErrInvalidMove, e.takerMove(t, hash, PrivKeyB, 9))
	assert.Nil(t, e.takerMove(t, hash, PrivKeyB, zt.MoveRock))
	// 招式不可更改
	assert.Equal(t, zt.ErrTakerMoveSet, e.takerMove(t, hash, PrivKeyB, zt.MovePaper))
}

// 托管侧双方都已注资但闲家未出招时预建对局, 闲家位就地补占
func TestZkRpsCreateMatchAfterTakerFunded(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	hash := common.ToHex(commitment(salt, zt.MoveRock))

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
	assert.Nil(t, e.fund(t, hash, AddrB, PrivKeyB, testAmount))

	tx, err := zt.CreateRawCreateMatchTx(e.cfg, &zt.ZkRpsCreateMatchTx{CommitHash: hash})
	assert.Nil(t, err)
	tx, err = signTx(tx, PrivKeyA)
	assert.Nil(t, err)
	_, err = e.driver.Exec(tx, 0)
	assert.Nil(t, err)

	matchId, ok := getLinkByHash(e.stateDB, hash)
	assert.True(t, ok)
	match, err := readMatch(e.stateDB, matchId)
	assert.Nil(t, err)
	assert.Equal(t, zt.MatchStatusCommitted, match.Status)
	assert.Equal(t, AddrB, match.Taker)

	// 闲家出招推进到等待开奖
	assert.Nil(t, e.takerMove(t, hash, PrivKeyB, zt.MoveScissors))
	match, _ = readMatch(e.stateDB, matchId)
	assert.Equal(t, zt.MatchStatusAwaitingReveal, match.Status)
	assert.Equal(t, baseTime+match.TimeoutSeconds, match.RevealDeadline)
}

// 证明后端拒绝伪造证明, 庄家在期限内重试正确证明可以开奖
func TestZkRpsProofRejectedThenRetry(t *testing.T) {
	e := setupEnv(t)
	salt := []byte("0123456789abcdef0123456789abcdef")
	commit := commitment(salt, zt.MoveRock)
	hash := common.ToHex(commit)

	assert.Nil(t, e.fund(t, hash, AddrA, PrivKeyA, testAmount))
	assert.Nil(t, e.fund(t, hash, AddrB, PrivKeyB, testAmount))
	assert.Nil(t, e.takerMove(t, hash, PrivKeyB, zt.MoveScissors))
	matchId, _ := getLinkByHash(e.stateDB, hash)

	// 承诺绑定正确但证明是伪造的
	err := e.reveal(t, matchId, zt.MoveRock, salt, []byte("garbage"), PrivKeyA)
	assert.Equal(t, zt.ErrProofRejected, err)

	// 被拒后押金原封不动, 对局仍在等待开奖
	assert.Equal(t, testAmount, e.execAccount(AddrA).Frozen)
	assert.Equal(t, testAmount, e.execAccount(AddrB).Frozen)
	match, _ := readMatch(e.stateDB, matchId)
	assert.Equal(t, zt.MatchStatusAwaitingReveal, match.Status)
	game, _ := readGame(e.stateDB, hash)
	assert.False(t, game.Resolved)

	proof := proofFor(commit, zt.MoveRock, zt.MoveScissors)
	assert.Nil(t, e.reveal(t, matchId, zt.MoveRock, salt, proof, PrivKeyA))

	skim := 2 * testAmount * DefaultRaffleBasisPoints / 10000
	assert.Equal(t, testTotal+testAmount-skim, e.execAccount(AddrA).Balance)
	assert.Equal(t, int64(0), e.execAccount(AddrA).Frozen)
	match, _ = readMatch(e.stateDB, matchId)
	assert.Equal(t, zt.MatchStatusCompleted, match.Status)
	assert.Equal(t, zt.ResultMaker, match.Winner)
}
