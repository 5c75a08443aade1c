package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/33cn/chain33/types"
)

func testChain33Config() *types.Chain33Config {
	cfg := types.NewChain33Config(types.GetDefaultCfgstring())
	cfg.SetTitleOnlyForTest("chain33")
	return cfg
}

func TestCreateRawSwapFundTx(t *testing.T) {
	cfg := testChain33Config()
	_, err := CreateRawSwapFundTx(cfg, nil)
	assert.Equal(t, types.ErrInvalidParam, err)

	_, err = CreateRawSwapFundTx(cfg, &ZkRpsSwapFundTx{CommitHash: "zz not hex"})
	assert.Equal(t, types.ErrInvalidParam, err)

	tx, err := CreateRawSwapFundTx(cfg, &ZkRpsSwapFundTx{
		CommitHash:     "0x1122334455667788112233445566778811223344556677881122334455667788",
		Origin:         "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4",
		Pool:           "pool-a",
		AssetExec:      "coins",
		AssetSymbol:    "bty",
		RealizedAmount: 100,
	})
	assert.Nil(t, err)

	var action ZkRpsAction
	assert.Nil(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, int32(ZkRpsActionSwapFund), action.Ty)
	fund := action.GetSwapFund()
	assert.NotNil(t, fund)
	assert.Equal(t, 32, len(fund.CommitHash))
	assert.Equal(t, "pool-a", fund.Pool)
	assert.Equal(t, int64(100), fund.RealizedAmount)
}

func TestCreateRawRevealTx(t *testing.T) {
	tx, err := CreateRawRevealTx(testChain33Config(), &ZkRpsRevealTx{
		MatchId:   7,
		MakerMove: MoveRock,
		Salt:      "0xaabb",
		Proof:     "0xccdd",
	})
	assert.Nil(t, err)

	var action ZkRpsAction
	assert.Nil(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, int32(ZkRpsActionReveal), action.Ty)
	reveal := action.GetReveal()
	assert.Equal(t, int64(7), reveal.MatchId)
	assert.Equal(t, MoveRock, reveal.MakerMove)
	assert.Equal(t, []byte{0xaa, 0xbb}, reveal.Salt)
	assert.Equal(t, []byte{0xcc, 0xdd}, reveal.Proof)
}

func TestCreateTxByName(t *testing.T) {
	at := NewType(testChain33Config())
	payload, _ := json.Marshal(&ZkRpsJoinMatchTx{MatchId: 3})
	tx, err := at.CreateTx("JoinMatch", payload)
	assert.Nil(t, err)

	var action ZkRpsAction
	assert.Nil(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, int32(ZkRpsActionJoinMatch), action.Ty)
	assert.Equal(t, int64(3), action.GetJoinMatch().MatchId)

	_, err = at.CreateTx("NoSuchAction", payload)
	assert.Equal(t, types.ErrNotSupport, err)
}

func TestTypeMapCoversAllActions(t *testing.T) {
	m := NewType(testChain33Config()).GetTypeMap()
	assert.Equal(t, 8, len(m))
	assert.Equal(t, int32(ZkRpsActionSwapFund), m["SwapFund"])
	assert.Equal(t, int32(ZkRpsActionRefund), m["Refund"])
}
