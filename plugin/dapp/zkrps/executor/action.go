package executor

import (
	"strconv"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.KVDB
	index        int
	api          client.QueueProtocolAPI
}

func NewAction(z *ZkRps, tx *types.Transaction, index int) *Action {
	return &Action{z.GetCoinsAccount(), z.GetStateDB(), tx.Hash(), tx.From(),
		z.GetBlockTime(), z.GetHeight(), dapp.ExecAddress(string(tx.Execer)), z.GetLocalDB(), index, z.GetAPI()}
}

func (a *Action) GetIndex() int64 {
	return a.height*types.MaxTxsPerBlock + int64(a.index)
}

// 押注资产可以是主币, 也可以是 token 等其他合约发行的资产
func (a *Action) accountDB(assetExec, assetSymbol string) (*account.DB, error) {
	if assetExec == "" || assetExec == "coins" {
		return a.coinsAccount, nil
	}
	return account.NewAccountDB(a.api.GetConfig(), assetExec, assetSymbol, a.db)
}

func (a *Action) checkExecAccountBalance(acc *account.DB, fromAddr string, toFrozen, toActive int64) bool {
	ea := acc.LoadExecAccount(fromAddr, a.execaddr)
	return ea.GetBalance() >= toFrozen && ea.GetFrozen() >= toActive
}

func raffleAddr() string {
	return dapp.ExecAddress(raffleAccountName)
}

func hashHex(hash []byte) string {
	return common.ToHex(hash)
}

func (a *Action) saveGame(game *zt.PendingGame) *types.KeyValue {
	value := types.Encode(game)
	key := gameKey(hashHex(game.CommitHash))
	a.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

func (a *Action) saveMatch(match *zt.MatchRecord) *types.KeyValue {
	value := types.Encode(match)
	key := matchKey(match.MatchId)
	a.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

func readGame(db dbm.KV, hash string) (*zt.PendingGame, error) {
	data, err := db.Get(gameKey(hash))
	if err != nil {
		return nil, err
	}
	var game zt.PendingGame
	if err := types.Decode(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func readMatch(db dbm.KV, matchId int64) (*zt.MatchRecord, error) {
	data, err := db.Get(matchKey(matchId))
	if err != nil {
		return nil, err
	}
	var match zt.MatchRecord
	if err := types.Decode(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// 对局号从 1 开始自增
func (a *Action) nextMatchId() (int64, *types.KeyValue) {
	var seq int64
	if data, err := a.db.Get(matchSeqKey()); err == nil {
		seq, _ = strconv.ParseInt(string(data), 10, 64)
	}
	seq++
	value := []byte(strconv.FormatInt(seq, 10))
	a.db.Set(matchSeqKey(), value)
	return seq, &types.KeyValue{Key: matchSeqKey(), Value: value}
}

func readInt64(db dbm.KV, key []byte) int64 {
	data, err := db.Get(key)
	if err != nil {
		return 0
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (a *Action) setInt64(key []byte, v int64) *types.KeyValue {
	value := []byte(strconv.FormatInt(v, 10))
	a.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

func (a *Action) creditContribution(game *zt.PendingGame, addr string, delta int64) *types.KeyValue {
	key := contribKey(addr, game.Pool, game.AssetExec, game.AssetSymbol)
	return a.setInt64(key, readInt64(a.db, key)+delta)
}

func (a *Action) creditRafflePool(game *zt.PendingGame, delta int64) *types.KeyValue {
	key := raffleKey(game.Pool, game.AssetExec, game.AssetSymbol)
	return a.setInt64(key, readInt64(a.db, key)+delta)
}

func (a *Action) receiptLog(ty int32, r *zt.ReceiptZkRps) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (a *Action) gameReceipt(ty int32, game *zt.PendingGame, prevStatus int32, match int64, amount, skim int64, winner int32) *types.ReceiptLog {
	return a.receiptLog(ty, &zt.ReceiptZkRps{
		CommitHash:     hashHex(game.CommitHash),
		MatchId:        match,
		GameStatus:     game.Status,
		PrevGameStatus: prevStatus,
		Addr:           a.fromaddr,
		Maker:          game.Maker,
		Taker:          game.Taker,
		Amount:         amount,
		Skim:           skim,
		Winner:         winner,
		Index:          game.Index,
		PrevIndex:      game.PrevIndex,
	})
}

// origin 是真实出资方；经中继转发的兑换里签名者是中继自己，
// 必须持有 manage 配置的中继授权，否则一律拒绝，防止把出资记到中继名下。
func (a *Action) resolveOrigin(origin string) (string, error) {
	if origin == "" {
		return "", zt.ErrOriginMissing
	}
	if err := address.CheckAddress(origin); err != nil {
		return "", zt.ErrOriginInvalid
	}
	if origin != a.fromaddr && !isAuthorizedRelay(a.db, a.fromaddr) {
		return "", zt.ErrRelayNotAllowed
	}
	return origin, nil
}

// SwapFund 处理带承诺哈希标记的兑换回调：首次出现的哈希记为庄家注资，
// 已有庄家而闲家位空缺时记为闲家注资，两个位置都满则拒绝。
func (a *Action) SwapFund(fund *zt.ZkRpsSwapFund) (*types.Receipt, error) {
	if len(fund.GetCommitHash()) != 32 {
		return nil, types.ErrInvalidParam
	}
	party, err := a.resolveOrigin(fund.GetOrigin())
	if err != nil {
		zlog.Error("SwapFund", "addr", a.fromaddr, "origin", fund.GetOrigin(), "err", err)
		return nil, err
	}
	// 托管以实际到账金额为准, 不用名义申报金额
	realized := fund.GetRealizedAmount()
	if realized <= 0 {
		return nil, zt.ErrZeroContribution
	}
	minStake := getConfValue(a.db, ConfNameMinStake, MinStake)
	maxStake := getConfValue(a.db, ConfNameMaxStake, MaxStake)
	if realized < minStake || realized > maxStake {
		return nil, zt.ErrStakeOutOfRange
	}

	hash := hashHex(fund.GetCommitHash())
	game, err := readGame(a.db, hash)
	if err != nil {
		return a.fundMaker(fund, party, realized)
	}
	return a.fundTaker(game, fund, party, realized)
}

func (a *Action) fundMaker(fund *zt.ZkRpsSwapFund, party string, realized int64) (*types.Receipt, error) {
	acc, err := a.accountDB(fund.GetAssetExec(), fund.GetAssetSymbol())
	if err != nil {
		return nil, err
	}
	if !a.checkExecAccountBalance(acc, party, realized, 0) {
		zlog.Error("SwapFund.maker", "addr", party, "execaddr", a.execaddr, "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	receipt, err := acc.ExecFrozen(party, a.execaddr, realized)
	if err != nil {
		zlog.Error("SwapFund.maker ExecFrozen", "addr", party, "amount", realized, "err", err)
		return nil, err
	}
	game := &zt.PendingGame{
		CommitHash:        fund.GetCommitHash(),
		Maker:             party,
		Pool:              fund.GetPool(),
		AssetExec:         fund.GetAssetExec(),
		AssetSymbol:       fund.GetAssetSymbol(),
		MakerContribution: realized,
		CreatedAt:         a.blocktime,
		Status:            zt.GameStatusWaitTaker,
		Index:             a.GetIndex(),
	}
	logs := []*types.ReceiptLog{a.gameReceipt(zt.TyLogZkRpsGameCreated, game, 0, 0, realized, 0, zt.ResultUnset)}
	kv := []*types.KeyValue{a.saveGame(game), a.creditContribution(game, party, realized)}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (a *Action) fundTaker(game *zt.PendingGame, fund *zt.ZkRpsSwapFund, party string, realized int64) (*types.Receipt, error) {
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if game.TakerJoined {
		return nil, zt.ErrGameSlotsFull
	}
	if party == game.Maker {
		// 庄家位已占, 重复注资直接拒绝, 防止覆盖
		return nil, zt.ErrGameExists
	}
	if fund.GetPool() != game.Pool || fund.GetAssetExec() != game.AssetExec || fund.GetAssetSymbol() != game.AssetSymbol {
		return nil, zt.ErrAssetMismatch
	}
	acc, err := a.accountDB(game.AssetExec, game.AssetSymbol)
	if err != nil {
		return nil, err
	}
	if !a.checkExecAccountBalance(acc, party, realized, 0) {
		zlog.Error("SwapFund.taker", "addr", party, "execaddr", a.execaddr, "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	receipt, err := acc.ExecFrozen(party, a.execaddr, realized)
	if err != nil {
		zlog.Error("SwapFund.taker ExecFrozen", "addr", party, "amount", realized, "err", err)
		return nil, err
	}
	prev := game.Status
	game.TakerJoined = true
	game.Taker = party
	game.TakerContribution = realized
	game.TakerMoveAt = a.blocktime
	game.Status = zt.GameStatusWaitMove
	game.PrevIndex = game.Index
	game.Index = a.GetIndex()
	logs := []*types.ReceiptLog{a.gameReceipt(zt.TyLogZkRpsTakerJoined, game, prev, 0, realized, 0, zt.ResultUnset)}
	kv := []*types.KeyValue{a.saveGame(game), a.creditContribution(game, party, realized)}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// TakerMove 登记闲家的明文招式, 并在此刻把托管记录与对局记录对账挂钩:
// 没有链接则新建一条对局, 已有链接则校验一致后推进对局状态机。
func (a *Action) TakerMove(move *zt.ZkRpsTakerMove) (*types.Receipt, error) {
	hash := hashHex(move.GetCommitHash())
	game, err := readGame(a.db, hash)
	if err != nil {
		zlog.Error("TakerMove", "addr", a.fromaddr, "hash", hash, "err", err)
		return nil, err
	}
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if !game.TakerJoined {
		return nil, zt.ErrTakerNotJoined
	}
	if a.fromaddr != game.Taker {
		return nil, zt.ErrNotYourGame
	}
	if game.TakerMove != zt.MoveUnset {
		return nil, zt.ErrTakerMoveSet
	}
	if !validMove(move.GetMove()) {
		return nil, zt.ErrInvalidMove
	}
	// 申报的最终出资额必须与兑换实际托管的金额一致
	if move.GetAmount() != 0 && move.GetAmount() != game.TakerContribution {
		return nil, types.ErrInvalidParam
	}

	prev := game.Status
	game.TakerMove = move.GetMove()
	game.TakerMoveAt = a.blocktime
	game.Status = zt.GameStatusWaitReveal
	game.PrevIndex = game.Index
	game.Index = a.GetIndex()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	matchId, linked := getLinkByHash(a.db, hash)
	if linked {
		match, err := readMatch(a.db, matchId)
		if err != nil {
			return nil, err
		}
		matchLogs, matchKV, err := a.advanceLinkedMatch(game, match)
		if err != nil {
			return nil, err
		}
		logs = append(logs, matchLogs...)
		kv = append(kv, matchKV...)
	} else {
		id, matchLogs, matchKV, err := a.createLinkedMatch(game)
		if err != nil {
			return nil, err
		}
		matchId = id
		logs = append(logs, matchLogs...)
		kv = append(kv, matchKV...)
	}

	logs = append([]*types.ReceiptLog{a.gameReceipt(zt.TyLogZkRpsMoveRegistered, game, prev, matchId, game.TakerContribution, 0, zt.ResultUnset)}, logs...)
	kv = append([]*types.KeyValue{a.saveGame(game)}, kv...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Refund 退还始终无人应战的庄家押金
func (a *Action) Refund(refund *zt.ZkRpsRefund) (*types.Receipt, error) {
	hash := hashHex(refund.GetCommitHash())
	game, err := readGame(a.db, hash)
	if err != nil {
		zlog.Error("Refund", "addr", a.fromaddr, "hash", hash, "err", err)
		return nil, err
	}
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if a.fromaddr != game.Maker {
		return nil, zt.ErrNotYourGame
	}
	if game.TakerJoined {
		return nil, zt.ErrGameSlotsFull
	}
	refundTimeout := getConfValue(a.db, ConfNameRefundTimeout, DefaultRefundTimeout)
	if a.blocktime <= game.CreatedAt+refundTimeout {
		return nil, zt.ErrRefundTimeoutNotOver
	}
	acc, err := a.accountDB(game.AssetExec, game.AssetSymbol)
	if err != nil {
		return nil, err
	}
	if !a.checkExecAccountBalance(acc, game.Maker, 0, game.MakerContribution) {
		return nil, types.ErrNoBalance
	}
	receipt, err := acc.ExecActive(game.Maker, a.execaddr, game.MakerContribution)
	if err != nil {
		zlog.Error("Refund.ExecActive", "addr", game.Maker, "amount", game.MakerContribution, "err", err)
		return nil, err
	}
	prev := game.Status
	game.Resolved = true
	game.Status = zt.GameStatusResolved
	game.PrevIndex = game.Index
	game.Index = a.GetIndex()
	logs := []*types.ReceiptLog{a.gameReceipt(zt.TyLogZkRpsRefunded, game, prev, 0, game.MakerContribution, 0, zt.ResultUnset)}
	kv := []*types.KeyValue{a.saveGame(game), a.creditContribution(game, game.Maker, -game.MakerContribution)}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
