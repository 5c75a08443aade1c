package executor

import (
	"bytes"
	"strconv"

	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

// 链接表把托管侧的承诺哈希和对局侧的对局号一一对应起来，
// 两个方向各存一条，任何一侧已被占用且指向不同对象都算冲突。

func getLinkByHash(db dbm.KV, hash string) (int64, bool) {
	data, err := db.Get(linkHashKey(hash))
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func getLinkByMatch(db dbm.KV, matchId int64) (string, bool) {
	data, err := db.Get(linkMatchKey(matchId))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (a *Action) setLink(hash string, matchId int64) []*types.KeyValue {
	idValue := []byte(strconv.FormatInt(matchId, 10))
	a.db.Set(linkHashKey(hash), idValue)
	a.db.Set(linkMatchKey(matchId), []byte(hash))
	return []*types.KeyValue{
		{Key: linkHashKey(hash), Value: idValue},
		{Key: linkMatchKey(matchId), Value: []byte(hash)},
	}
}

func (a *Action) matchReceipt(ty int32, match *zt.MatchRecord, prevStatus int32, amount, skim int64) *types.ReceiptLog {
	return a.receiptLog(ty, &zt.ReceiptZkRps{
		CommitHash: hashHex(match.CommitHash),
		MatchId:    match.MatchId,
		Status:     match.Status,
		PrevStatus: prevStatus,
		Addr:       a.fromaddr,
		Maker:      match.Maker,
		Taker:      match.Taker,
		Amount:     amount,
		Skim:       skim,
		Winner:     match.Winner,
	})
}

// LinkMatch 显式建立承诺哈希与对局号之间的链接。重复提交同一组链接是
// 幂等成功，任何一侧已经指向别处则拒绝，决不允许改写已有链接。
func (a *Action) LinkMatch(link *zt.ZkRpsLinkMatch) (*types.Receipt, error) {
	hash := hashHex(link.GetCommitHash())
	game, err := readGame(a.db, hash)
	if err != nil {
		zlog.Error("LinkMatch", "addr", a.fromaddr, "hash", hash, "err", err)
		return nil, err
	}
	match, err := readMatch(a.db, link.GetMatchId())
	if err != nil {
		zlog.Error("LinkMatch", "addr", a.fromaddr, "matchId", link.GetMatchId(), "err", err)
		return nil, err
	}
	if a.fromaddr != game.Maker && a.fromaddr != match.Maker {
		return nil, zt.ErrNotYourGame
	}
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if match.Status == zt.MatchStatusCompleted || match.Status == zt.MatchStatusForfeited {
		return nil, zt.ErrMatchStatus
	}
	if match.Maker != game.Maker {
		return nil, zt.ErrLinkConflict
	}
	if len(match.CommitHash) != 0 && !bytes.Equal(match.CommitHash, game.CommitHash) {
		return nil, zt.ErrLinkConflict
	}

	if prev, ok := getLinkByHash(a.db, hash); ok {
		if prev != match.MatchId {
			return nil, zt.ErrLinkConflict
		}
		// 同一组链接重复提交，幂等成功，不产生新状态
		return &types.Receipt{Ty: types.ExecOk,
			Logs: []*types.ReceiptLog{a.matchReceipt(zt.TyLogZkRpsLinked, match, match.Status, 0, 0)}}, nil
	}
	if prevHash, ok := getLinkByMatch(a.db, match.MatchId); ok && prevHash != hash {
		return nil, zt.ErrLinkConflict
	}

	// 闲家出招时链接表随招式同步落库, 走到这里的托管记录必然尚未出招,
	// 建完链接无进度可补。
	kv := a.setLink(hash, match.MatchId)
	logs := []*types.ReceiptLog{a.matchReceipt(zt.TyLogZkRpsLinked, match, match.Status, 0, 0)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// createLinkedMatch 在闲家出招但尚无对局记录时，就地补建一条对局并链接，
// 直接进入等待开奖阶段。
func (a *Action) createLinkedMatch(game *zt.PendingGame) (int64, []*types.ReceiptLog, []*types.KeyValue, error) {
	matchId, seqKV := a.nextMatchId()
	timeout := getConfValue(a.db, ConfNameRevealTimeout, DefaultRevealTimeout)
	match := &zt.MatchRecord{
		MatchId:        matchId,
		Maker:          game.Maker,
		Taker:          game.Taker,
		Status:         zt.MatchStatusAwaitingReveal,
		CommitHash:     game.CommitHash,
		TakerMoveClear: game.TakerMove,
		CreatedAt:      a.blocktime,
		TimeoutSeconds: timeout,
		RevealDeadline: a.blocktime + timeout,
	}
	kv := []*types.KeyValue{seqKV, a.saveMatch(match)}
	kv = append(kv, a.setLink(hashHex(game.CommitHash), matchId)...)
	logs := []*types.ReceiptLog{
		a.matchReceipt(zt.TyLogZkRpsMatchCreated, match, 0, 0, 0),
		a.matchReceipt(zt.TyLogZkRpsLinked, match, match.Status, 0, 0),
	}
	return matchId, logs, kv, nil
}

// advanceLinkedMatch 把托管侧已登记的闲家招式同步进已链接的对局，
// 启动开奖倒计时。
func (a *Action) advanceLinkedMatch(game *zt.PendingGame, match *zt.MatchRecord) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	if match.Status != zt.MatchStatusAwaitingTaker && match.Status != zt.MatchStatusCommitted {
		return nil, nil, zt.ErrMatchStatus
	}
	if match.Taker != "" && match.Taker != game.Taker {
		return nil, nil, zt.ErrLinkConflict
	}
	prev := match.Status
	match.Taker = game.Taker
	match.TakerMoveClear = game.TakerMove
	match.Status = zt.MatchStatusAwaitingReveal
	timeout := match.TimeoutSeconds
	if timeout <= 0 {
		timeout = getConfValue(a.db, ConfNameRevealTimeout, DefaultRevealTimeout)
		match.TimeoutSeconds = timeout
	}
	match.RevealDeadline = a.blocktime + timeout
	kv := []*types.KeyValue{a.saveMatch(match)}
	logs := []*types.ReceiptLog{a.matchReceipt(zt.TyLogZkRpsMatchJoined, match, prev, 0, 0)}
	return logs, kv, nil
}
