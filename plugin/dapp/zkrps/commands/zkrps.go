package commands

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"

	zt "github.com/kavehtehrani/zk-ogs/plugin/dapp/zkrps/types"
)

func ZkRpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zkrps",
		Short: "Commit-reveal rock-paper-scissors wager",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		FundCmd(),
		MoveCmd(),
		LinkCmd(),
		CreateMatchCmd(),
		JoinCmd(),
		RevealCmd(),
		ForfeitCmd(),
		RefundCmd(),
		QueryGameCmd(),
		QueryMatchCmd(),
		QueryMatchIdCmd(),
		QueryContributionCmd(),
		QueryRafflePoolCmd(),
		ListGameCmd(),
	)
	return cmd
}

// 平行链前缀非空时构造平行链交易
func getRealExecName(paraName string, name string) string {
	return paraName + name
}

func sendCreateTx(cmd *cobra.Command, actionName string, params interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	payLoad, err := json.Marshal(params)
	if err != nil {
		return
	}
	paramWithExecAction := rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, zt.ZkRpsX),
		ActionName: actionName,
		Payload:    payLoad,
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", paramWithExecAction, nil)
	ctx.RunWithoutMarshal()
}

func sendQuery(cmd *cobra.Command, funcName string, req types.Message, res interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := rpctypes.Query4Jrpc{
		Execer:   zt.ZkRpsX,
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, res)
	ctx.Run()
}

func amountInt64(amount float64) int64 {
	return int64(math.Trunc((amount+0.0000001)*1e4)) * 1e4
}

// 注资
func FundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Create escrow funding transaction tagged with a commit hash",
		Run:   fundCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().StringP("origin", "o", "", "funding party address")
	cmd.MarkFlagRequired("origin")
	cmd.Flags().StringP("pool", "p", "", "exchange pool name")
	cmd.MarkFlagRequired("pool")
	cmd.Flags().StringP("exec", "e", "coins", "asset executor")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	cmd.Flags().Float64P("amount", "a", 0.0, "realized amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func fundCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	origin, _ := cmd.Flags().GetString("origin")
	pool, _ := cmd.Flags().GetString("pool")
	exec, _ := cmd.Flags().GetString("exec")
	symbol, _ := cmd.Flags().GetString("symbol")
	amount, _ := cmd.Flags().GetFloat64("amount")
	params := zt.ZkRpsSwapFundTx{
		CommitHash:      hash,
		Origin:          origin,
		Pool:            pool,
		AssetExec:       exec,
		AssetSymbol:     symbol,
		RequestedAmount: amountInt64(amount),
		RealizedAmount:  amountInt64(amount),
	}
	sendCreateTx(cmd, "SwapFund", params)
}

// 出招
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Create taker move transaction (1 rock, 2 paper, 3 scissors)",
		Run:   moveCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().Int32P("move", "m", 0, "move: 1 rock, 2 paper, 3 scissors")
	cmd.MarkFlagRequired("move")
	return cmd
}

func moveCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	move, _ := cmd.Flags().GetInt32("move")
	params := zt.ZkRpsTakerMoveTx{
		CommitHash: hash,
		Move:       move,
	}
	sendCreateTx(cmd, "TakerMove", params)
}

// 链接
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link a commit hash to a match id",
		Run:   linkCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().Int64P("match_id", "m", 0, "match id")
	cmd.MarkFlagRequired("match_id")
	return cmd
}

func linkCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	matchId, _ := cmd.Flags().GetInt64("match_id")
	params := zt.ZkRpsLinkMatchTx{
		CommitHash: hash,
		MatchId:    matchId,
	}
	sendCreateTx(cmd, "LinkMatch", params)
}

// 建局
func CreateMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_match",
		Short: "Create match record for a funded commit hash",
		Run:   createMatchCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().Int64P("timeout", "t", 0, "reveal timeout in seconds, 0 for default")
	return cmd
}

func createMatchCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	timeout, _ := cmd.Flags().GetInt64("timeout")
	params := zt.ZkRpsCreateMatchTx{
		CommitHash:     hash,
		TimeoutSeconds: timeout,
	}
	sendCreateTx(cmd, "CreateMatch", params)
}

// 应战
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a match as taker",
		Run:   joinCmd,
	}
	cmd.Flags().Int64P("match_id", "m", 0, "match id")
	cmd.MarkFlagRequired("match_id")
	return cmd
}

func joinCmd(cmd *cobra.Command, args []string) {
	matchId, _ := cmd.Flags().GetInt64("match_id")
	params := zt.ZkRpsJoinMatchTx{
		MatchId: matchId,
	}
	sendCreateTx(cmd, "JoinMatch", params)
}

// 开奖
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal maker move with salt and proof",
		Run:   revealCmd,
	}
	cmd.Flags().Int64P("match_id", "m", 0, "match id")
	cmd.MarkFlagRequired("match_id")
	cmd.Flags().Int32P("move", "v", 0, "maker move: 1 rock, 2 paper, 3 scissors")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("salt", "s", "", "commitment salt (hex)")
	cmd.MarkFlagRequired("salt")
	cmd.Flags().StringP("proof", "p", "", "proof bytes (hex)")
	cmd.MarkFlagRequired("proof")
	return cmd
}

func revealCmd(cmd *cobra.Command, args []string) {
	matchId, _ := cmd.Flags().GetInt64("match_id")
	move, _ := cmd.Flags().GetInt32("move")
	salt, _ := cmd.Flags().GetString("salt")
	proof, _ := cmd.Flags().GetString("proof")
	params := zt.ZkRpsRevealTx{
		MatchId:   matchId,
		MakerMove: move,
		Salt:      salt,
		Proof:     proof,
	}
	sendCreateTx(cmd, "Reveal", params)
}

// 超时判胜
func ForfeitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forfeit",
		Short: "Claim win after reveal deadline passed",
		Run:   forfeitCmd,
	}
	cmd.Flags().Int64P("match_id", "m", 0, "match id")
	cmd.MarkFlagRequired("match_id")
	return cmd
}

func forfeitCmd(cmd *cobra.Command, args []string) {
	matchId, _ := cmd.Flags().GetInt64("match_id")
	params := zt.ZkRpsForfeitTx{
		MatchId: matchId,
	}
	sendCreateTx(cmd, "Forfeit", params)
}

// 退款
func RefundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Refund an unmatched escrow after timeout",
		Run:   refundCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func refundCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	params := zt.ZkRpsRefundTx{
		CommitHash: hash,
	}
	sendCreateTx(cmd, "Refund", params)
}

func QueryGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_game",
		Short: "Query pending game by commit hash",
		Run:   queryGameCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryGameCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	var res zt.ReplyPendingGame
	sendQuery(cmd, zt.FuncNameGetPendingGame, &zt.QueryPendingGame{CommitHash: hash}, &res)
}

func QueryMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_match",
		Short: "Query match record by match id",
		Run:   queryMatchCmd,
	}
	cmd.Flags().Int64P("match_id", "m", 0, "match id")
	cmd.MarkFlagRequired("match_id")
	return cmd
}

func queryMatchCmd(cmd *cobra.Command, args []string) {
	matchId, _ := cmd.Flags().GetInt64("match_id")
	var res zt.ReplyMatch
	sendQuery(cmd, zt.FuncNameGetMatch, &zt.QueryMatch{MatchId: matchId}, &res)
}

func QueryMatchIdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_match_id",
		Short: "Query linked match id by commit hash, 0 when unlinked",
		Run:   queryMatchIdCmd,
	}
	cmd.Flags().StringP("hash", "x", "", "commit hash (hex)")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryMatchIdCmd(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	var res zt.ReplyMatchId
	sendQuery(cmd, zt.FuncNameGetMatchId, &zt.QueryMatchId{CommitHash: hash}, &res)
}

func QueryContributionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_contribution",
		Short: "Query escrowed contribution of an address in a pool",
		Run:   queryContributionCmd,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("pool", "p", "", "exchange pool name")
	cmd.MarkFlagRequired("pool")
	cmd.Flags().StringP("exec", "e", "coins", "asset executor")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	return cmd
}

func queryContributionCmd(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	pool, _ := cmd.Flags().GetString("pool")
	exec, _ := cmd.Flags().GetString("exec")
	symbol, _ := cmd.Flags().GetString("symbol")
	var res zt.ReplyAmount
	sendQuery(cmd, zt.FuncNameGetContribution,
		&zt.QueryContribution{Addr: addr, Pool: pool, AssetExec: exec, AssetSymbol: symbol}, &res)
}

func QueryRafflePoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_raffle",
		Short: "Query raffle pool balance",
		Run:   queryRafflePoolCmd,
	}
	cmd.Flags().StringP("pool", "p", "", "exchange pool name")
	cmd.MarkFlagRequired("pool")
	cmd.Flags().StringP("exec", "e", "coins", "asset executor")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	return cmd
}

func queryRafflePoolCmd(cmd *cobra.Command, args []string) {
	pool, _ := cmd.Flags().GetString("pool")
	exec, _ := cmd.Flags().GetString("exec")
	symbol, _ := cmd.Flags().GetString("symbol")
	var res zt.ReplyAmount
	sendQuery(cmd, zt.FuncNameGetRafflePool,
		&zt.QueryRafflePool{Pool: pool, AssetExec: exec, AssetSymbol: symbol}, &res)
}

func ListGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending games by status and optional address",
		Run:   listGameCmd,
	}
	cmd.Flags().Int32P("status", "t", 0, "game status: 1 wait taker, 2 wait move, 3 wait reveal, 4 resolved")
	cmd.MarkFlagRequired("status")
	cmd.Flags().StringP("addr", "a", "", "filter by address")
	cmd.Flags().Int64P("index", "i", 0, "pagination index, 0 for first page")
	cmd.Flags().Int32P("count", "c", 0, "page size, 0 for default")
	cmd.Flags().Int32P("direction", "d", 0, "0 descending, 1 ascending")
	return cmd
}

func listGameCmd(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	var res zt.ReplyGameList
	sendQuery(cmd, zt.FuncNameListGameByStatusAndAddr,
		&zt.QueryGameList{Status: status, Addr: addr, Index: index, Count: count, Direction: direction}, &res)
}
