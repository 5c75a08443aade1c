package executor

import (
	"bytes"

	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

// CreateMatch 由庄家预建对局记录并立即与托管侧链接。允许在闲家注资
// 之前或之后调用，已有进度会在此处一并同步。
func (a *Action) CreateMatch(create *zt.ZkRpsCreateMatch) (*types.Receipt, error) {
	hash := hashHex(create.GetCommitHash())
	game, err := readGame(a.db, hash)
	if err != nil {
		zlog.Error("CreateMatch", "addr", a.fromaddr, "hash", hash, "err", err)
		return nil, err
	}
	if a.fromaddr != game.Maker {
		return nil, zt.ErrNotYourGame
	}
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if _, ok := getLinkByHash(a.db, hash); ok {
		return nil, zt.ErrLinkConflict
	}
	timeout := create.GetTimeoutSeconds()
	if timeout == 0 {
		timeout = getConfValue(a.db, ConfNameRevealTimeout, DefaultRevealTimeout)
	}
	if timeout < MinRevealTimeout || timeout > MaxRevealTimeout {
		return nil, types.ErrInvalidParam
	}

	matchId, seqKV := a.nextMatchId()
	match := &zt.MatchRecord{
		MatchId:        matchId,
		Maker:          game.Maker,
		Status:         zt.MatchStatusAwaitingTaker,
		CommitHash:     game.CommitHash,
		CreatedAt:      a.blocktime,
		TimeoutSeconds: timeout,
	}
	kv := []*types.KeyValue{seqKV}
	kv = append(kv, a.setLink(hash, matchId)...)
	logs := []*types.ReceiptLog{a.matchReceipt(zt.TyLogZkRpsMatchCreated, match, 0, 0, 0)}

	// 托管侧闲家先注资时就地补占对局位。闲家一旦出招链接表即已落库,
	// 此处不可能再遇到无链接的 WaitReveal 托管记录。
	if game.TakerJoined {
		match.Taker = game.Taker
		match.Status = zt.MatchStatusCommitted
		logs = append(logs, a.matchReceipt(zt.TyLogZkRpsMatchJoined, match, zt.MatchStatusAwaitingTaker, 0, 0))
	}
	kv = append(kv, a.saveMatch(match))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// JoinMatch 由闲家在对局侧占位
func (a *Action) JoinMatch(join *zt.ZkRpsJoinMatch) (*types.Receipt, error) {
	match, err := readMatch(a.db, join.GetMatchId())
	if err != nil {
		zlog.Error("JoinMatch", "addr", a.fromaddr, "matchId", join.GetMatchId(), "err", err)
		return nil, err
	}
	if match.Status != zt.MatchStatusAwaitingTaker {
		return nil, zt.ErrMatchStatus
	}
	if match.Taker != "" {
		return nil, zt.ErrGameSlotsFull
	}
	if a.fromaddr == match.Maker {
		return nil, zt.ErrSelfMatch
	}
	// 托管侧已有闲家时必须是同一个人
	if hash, ok := getLinkByMatch(a.db, match.MatchId); ok {
		if game, err := readGame(a.db, hash); err == nil &&
			game.TakerJoined && game.Taker != a.fromaddr {
			return nil, zt.ErrLinkConflict
		}
	}
	prev := match.Status
	match.Taker = a.fromaddr
	match.Status = zt.MatchStatusCommitted
	kv := []*types.KeyValue{a.saveMatch(match)}
	logs := []*types.ReceiptLog{a.matchReceipt(zt.TyLogZkRpsMatchJoined, match, prev, 0, 0)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Reveal 由庄家揭示招式并出示证明。链上先验证承诺绑定，再独立复算
// 胜负，然后才把这组公开输入交给证明后端，三道校验全过才结算。
func (a *Action) Reveal(reveal *zt.ZkRpsReveal) (*types.Receipt, error) {
	match, err := readMatch(a.db, reveal.GetMatchId())
	if err != nil {
		zlog.Error("Reveal", "addr", a.fromaddr, "matchId", reveal.GetMatchId(), "err", err)
		return nil, err
	}
	if match.Status != zt.MatchStatusAwaitingReveal {
		return nil, zt.ErrMatchStatus
	}
	hash, ok := getLinkByMatch(a.db, match.MatchId)
	if !ok {
		return nil, zt.ErrLinkMissing
	}
	game, err := readGame(a.db, hash)
	if err != nil {
		return nil, err
	}
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if a.fromaddr != match.Maker {
		return nil, zt.ErrNotYourGame
	}
	if game.TakerMove == zt.MoveUnset {
		return nil, zt.ErrTakerMoveUnset
	}
	if a.blocktime > match.RevealDeadline {
		return nil, zt.ErrRevealDeadlinePassed
	}
	if !validMove(reveal.GetMakerMove()) {
		return nil, zt.ErrInvalidMove
	}
	if !bytes.Equal(commitment(reveal.GetSalt(), reveal.GetMakerMove()), game.CommitHash) {
		zlog.Error("Reveal", "addr", a.fromaddr, "matchId", match.MatchId, "err", zt.ErrCommitMismatch)
		return nil, zt.ErrCommitMismatch
	}
	result := winner(reveal.GetMakerMove(), game.TakerMove)
	pub := &zt.RpsPublicInputs{
		MakerMove:  reveal.GetMakerMove(),
		TakerMove:  game.TakerMove,
		Winner:     result,
		CommitHash: game.CommitHash,
	}
	if err := proofVerifier.Verify(pub, reveal.GetProof()); err != nil {
		zlog.Error("Reveal.Verify", "addr", a.fromaddr, "matchId", match.MatchId, "err", err)
		return nil, err
	}

	logs, kv, skim, err := a.settle(game, result)
	if err != nil {
		return nil, err
	}

	prevGame := game.Status
	game.Revealed = true
	game.MakerMove = reveal.GetMakerMove()
	game.Salt = reveal.GetSalt()
	game.Resolved = true
	game.Status = zt.GameStatusResolved
	game.PrevIndex = game.Index
	game.Index = a.GetIndex()

	prevMatch := match.Status
	match.MakerMoveClear = reveal.GetMakerMove()
	match.Winner = result
	match.Status = zt.MatchStatusCompleted

	total := game.MakerContribution + game.TakerContribution
	logs = append(logs,
		a.gameReceipt(zt.TyLogZkRpsRevealed, game, prevGame, match.MatchId, total, skim, result),
		a.matchReceipt(zt.TyLogZkRpsRevealed, match, prevMatch, total, skim))
	kv = append(kv, a.saveGame(game), a.saveMatch(match))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Forfeit 由闲家在庄家逾期不揭示时认输性判胜
func (a *Action) Forfeit(forfeit *zt.ZkRpsForfeit) (*types.Receipt, error) {
	match, err := readMatch(a.db, forfeit.GetMatchId())
	if err != nil {
		zlog.Error("Forfeit", "addr", a.fromaddr, "matchId", forfeit.GetMatchId(), "err", err)
		return nil, err
	}
	if match.Status != zt.MatchStatusAwaitingReveal {
		return nil, zt.ErrMatchStatus
	}
	hash, ok := getLinkByMatch(a.db, match.MatchId)
	if !ok {
		return nil, zt.ErrLinkMissing
	}
	game, err := readGame(a.db, hash)
	if err != nil {
		return nil, err
	}
	if game.Resolved {
		return nil, zt.ErrGameResolved
	}
	if a.fromaddr != match.Taker {
		return nil, zt.ErrNotYourGame
	}
	if a.blocktime <= match.RevealDeadline {
		return nil, zt.ErrRevealDeadlineNotOver
	}

	logs, kv, skim, err := a.settle(game, zt.ResultTaker)
	if err != nil {
		return nil, err
	}

	prevGame := game.Status
	game.Resolved = true
	game.Status = zt.GameStatusResolved
	game.PrevIndex = game.Index
	game.Index = a.GetIndex()

	prevMatch := match.Status
	match.Winner = zt.ResultTaker
	match.Status = zt.MatchStatusForfeited

	total := game.MakerContribution + game.TakerContribution
	logs = append(logs,
		a.gameReceipt(zt.TyLogZkRpsForfeited, game, prevGame, match.MatchId, total, skim, zt.ResultTaker),
		a.matchReceipt(zt.TyLogZkRpsForfeited, match, prevMatch, total, skim))
	kv = append(kv, a.saveGame(game), a.saveMatch(match))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// settle 解冻或划转双方押金。平局各自取回；分出胜负时胜方拿回本金并
// 赢得败方押金，从败方押金里按万分比抽成进奖池，抽成上限是败方押金。
func (a *Action) settle(game *zt.PendingGame, result int32) ([]*types.ReceiptLog, []*types.KeyValue, int64, error) {
	acc, err := a.accountDB(game.AssetExec, game.AssetSymbol)
	if err != nil {
		return nil, nil, 0, err
	}
	if !a.checkExecAccountBalance(acc, game.Maker, 0, game.MakerContribution) {
		zlog.Error("settle", "addr", game.Maker, "execaddr", a.execaddr, "err", types.ErrNoBalance)
		return nil, nil, 0, types.ErrNoBalance
	}
	if !a.checkExecAccountBalance(acc, game.Taker, 0, game.TakerContribution) {
		zlog.Error("settle", "addr", game.Taker, "execaddr", a.execaddr, "err", types.ErrNoBalance)
		return nil, nil, 0, types.ErrNoBalance
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if result == zt.ResultTie {
		receipt, err := acc.ExecActive(game.Maker, a.execaddr, game.MakerContribution)
		if err != nil {
			zlog.Error("settle.ExecActive", "addr", game.Maker, "amount", game.MakerContribution, "err", err)
			return nil, nil, 0, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		receipt, err = acc.ExecActive(game.Taker, a.execaddr, game.TakerContribution)
		if err != nil {
			acc.ExecFrozen(game.Maker, a.execaddr, game.MakerContribution) // rollback
			zlog.Error("settle.ExecActive", "addr", game.Taker, "amount", game.TakerContribution, "err", err)
			return nil, nil, 0, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		kv = append(kv,
			a.creditContribution(game, game.Maker, -game.MakerContribution),
			a.creditContribution(game, game.Taker, -game.TakerContribution))
		return logs, kv, 0, nil
	}

	winAddr, loseAddr := game.Maker, game.Taker
	winStake, loseStake := game.MakerContribution, game.TakerContribution
	if result == zt.ResultTaker {
		winAddr, loseAddr = game.Taker, game.Maker
		winStake, loseStake = game.TakerContribution, game.MakerContribution
	}

	bps := getConfValue(a.db, ConfNameRaffleBasisPoints, DefaultRaffleBasisPoints)
	if bps < 0 {
		bps = 0
	}
	if bps > MaxRaffleBasisPoints {
		bps = MaxRaffleBasisPoints
	}
	skim := (winStake + loseStake) * bps / 10000
	if skim > loseStake {
		skim = loseStake
	}

	receipt, err := acc.ExecActive(winAddr, a.execaddr, winStake)
	if err != nil {
		zlog.Error("settle.ExecActive", "addr", winAddr, "amount", winStake, "err", err)
		return nil, nil, 0, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	if loseStake-skim > 0 {
		receipt, err = acc.ExecTransferFrozen(loseAddr, winAddr, a.execaddr, loseStake-skim)
		if err != nil {
			acc.ExecFrozen(winAddr, a.execaddr, winStake) // rollback
			zlog.Error("settle.ExecTransferFrozen", "addr", loseAddr, "amount", loseStake-skim, "err", err)
			return nil, nil, 0, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	if skim > 0 {
		receipt, err = acc.ExecTransferFrozen(loseAddr, raffleAddr(), a.execaddr, skim)
		if err != nil {
			acc.ExecFrozen(winAddr, a.execaddr, winStake) // rollback
			if loseStake-skim > 0 {
				acc.ExecTransfer(winAddr, loseAddr, a.execaddr, loseStake-skim) // rollback
				acc.ExecFrozen(loseAddr, a.execaddr, loseStake-skim)
			}
			zlog.Error("settle.ExecTransferFrozen raffle", "addr", loseAddr, "amount", skim, "err", err)
			return nil, nil, 0, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		kv = append(kv, a.creditRafflePool(game, skim))
	}
	kv = append(kv,
		a.creditContribution(game, game.Maker, -game.MakerContribution),
		a.creditContribution(game, game.Taker, -game.TakerContribution))
	return logs, kv, skim, nil
}
