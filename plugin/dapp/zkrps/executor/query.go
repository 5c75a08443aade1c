package executor

import (
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func (z *ZkRps) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case zt.FuncNameGetPendingGame:
		var in zt.QueryPendingGame
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		game, err := readGame(z.GetStateDB(), in.GetCommitHash())
		if err != nil {
			return nil, err
		}
		return &zt.ReplyPendingGame{Game: game}, nil
	case zt.FuncNameGetMatch:
		var in zt.QueryMatch
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		match, err := readMatch(z.GetStateDB(), in.GetMatchId())
		if err != nil {
			return nil, err
		}
		return &zt.ReplyMatch{Match: match}, nil
	case zt.FuncNameGetMatchId:
		var in zt.QueryMatchId
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		// 未链接时返回 0, 不算错误
		matchId, _ := getLinkByHash(z.GetStateDB(), in.GetCommitHash())
		return &zt.ReplyMatchId{MatchId: matchId}, nil
	case zt.FuncNameGetContribution:
		var in zt.QueryContribution
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		key := contribKey(in.GetAddr(), in.GetPool(), in.GetAssetExec(), in.GetAssetSymbol())
		return &zt.ReplyAmount{Amount: readInt64(z.GetStateDB(), key)}, nil
	case zt.FuncNameGetRafflePool:
		var in zt.QueryRafflePool
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		key := raffleKey(in.GetPool(), in.GetAssetExec(), in.GetAssetSymbol())
		return &zt.ReplyAmount{Amount: readInt64(z.GetStateDB(), key)}, nil
	case zt.FuncNameGetRefundTimeout:
		seconds := getConfValue(z.GetStateDB(), ConfNameRefundTimeout, DefaultRefundTimeout)
		return &zt.ReplyRefundTimeout{Seconds: seconds}, nil
	case zt.FuncNameListGameByStatusAndAddr:
		var in zt.QueryGameList
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return queryGameListByStatusAndAddr(z.GetLocalDB(), z.GetStateDB(), &in)
	case zt.FuncNameListWaitingForTaker:
		return queryHashesByStatus(z.GetLocalDB(), z.GetStateDB(), zt.GameStatusWaitTaker)
	case zt.FuncNameListWaitingForReveal:
		return queryHashesByStatus(z.GetLocalDB(), z.GetStateDB(), zt.GameStatusWaitReveal)
	}
	return nil, types.ErrActionNotSupport
}

func queryHashesByStatus(db dbm.Lister, stateDB dbm.KV, status int32) (types.Message, error) {
	count := int32(getConfValue(stateDB, ConfNameMaxCount, MaxCount))
	values, err := db.List(calcGameStatusIndexPrefix(status), nil, count, ListDESC)
	if err != nil {
		return nil, err
	}
	var hashes []string
	for _, value := range values {
		var record zt.GameRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		hashes = append(hashes, record.GetCommitHash())
	}
	return &zt.ReplyHashList{CommitHashes: hashes}, nil
}

func queryGameListByStatusAndAddr(db dbm.Lister, stateDB dbm.KV, param *zt.QueryGameList) (types.Message, error) {
	if param.GetStatus() < zt.GameStatusWaitTaker || param.GetStatus() > zt.GameStatusResolved {
		return nil, types.ErrInvalidParam
	}
	direction := ListDESC
	if param.GetDirection() == ListASC {
		direction = ListASC
	}
	count := int32(getConfValue(stateDB, ConfNameDefaultCount, DefaultCount))
	maxCount := int32(getConfValue(stateDB, ConfNameMaxCount, MaxCount))
	if 0 < param.GetCount() && param.GetCount() <= maxCount {
		count = param.GetCount()
	}
	var prefix []byte
	var key []byte
	if param.GetAddr() == "" {
		prefix = calcGameStatusIndexPrefix(param.GetStatus())
		key = calcGameStatusIndexKey(param.GetStatus(), param.GetIndex())
	} else {
		prefix = calcGameAddrIndexPrefix(param.GetStatus(), param.GetAddr())
		key = calcGameAddrIndexKey(param.GetStatus(), param.GetAddr(), param.GetIndex())
	}
	var values [][]byte
	var err error
	if param.GetIndex() == 0 { //第一次查询
		values, err = db.List(prefix, nil, count, direction)
	} else {
		values, err = db.List(prefix, key, count, direction)
	}
	if err != nil {
		return nil, err
	}
	var games []*zt.PendingGame
	for _, value := range values {
		var record zt.GameRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		game, err := readGame(stateDB, record.GetCommitHash())
		if err != nil {
			continue
		}
		games = append(games, game)
	}
	return &zt.ReplyGameList{Games: games}, nil
}
