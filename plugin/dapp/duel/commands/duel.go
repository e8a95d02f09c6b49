// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands duel cli
package commands

import (
	"fmt"

	"github.com/33cn/duel/common/address"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/rpc/jsonclient"
	rpctypes "github.com/33cn/duel/rpc/types"
	commandtypes "github.com/33cn/duel/system/dapp/commands/types"
	"github.com/33cn/duel/types"
	"github.com/spf13/cobra"
)

// Cmd duel command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duel",
		Short: "Escrow duel management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateCmd(),
		JoinCmd(),
		ResolveCmd(),
		GetCmd(),
		ListCmd(),
		RecordsCmd(),
		CountCmd(),
	)
	return cmd
}

// CreateCmd open a game, the fee is paid with the tx
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a duel game and stake the fee",
		Run:   duelCreate,
	}
	addCombatantFlags(cmd)
	cmd.Flags().StringP("fee", "f", "", "fee in coins, the competitor has to pay the same")
	cmd.MarkFlagRequired("fee")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func addCombatantFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32P("defense", "d", 0, "defense of the combatant")
	cmd.Flags().Uint32P("attack", "t", 0, "attack of the combatant")
}

func duelCreate(cmd *cobra.Command, args []string) {
	defense, _ := cmd.Flags().GetUint32("defense")
	attack, _ := cmd.Flags().GetUint32("attack")
	fee, err := commandtypes.GetAmountValue(cmd, "fee")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	tx, err := dty.CreateDuelCreateTx(defense, attack, fee)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, tx)
}

// JoinCmd join the open game of an initiator
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open duel game and stake the same fee",
		Run:   duelJoin,
	}
	cmd.Flags().StringP("initiator", "i", "", "address of the game initiator")
	cmd.MarkFlagRequired("initiator")
	addCombatantFlags(cmd)
	cmd.Flags().StringP("payment", "p", "", "payment in coins, the fee of the game when empty")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func duelJoin(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	initiator, _ := cmd.Flags().GetString("initiator")
	defense, _ := cmd.Flags().GetUint32("defense")
	attack, _ := cmd.Flags().GetUint32("attack")
	paymentText, _ := cmd.Flags().GetString("payment")
	var payment int64
	var err error
	if paymentText == "" {
		var game dty.Game
		if err = queryDuel(rpcLaddr, dty.FuncNameGetDuel, &dty.ReqDuel{Initiator: initiator}, &game); err == nil {
			payment = game.GetFee()
		}
	} else {
		payment, err = types.ParseCoins(paymentText)
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	tx, err := dty.CreateDuelJoinTx(initiator, defense, attack, payment)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, tx)
}

// ResolveCmd resolve a matched game, anyone may send it
func ResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a matched duel game and pay the winner",
		Run:   duelResolve,
	}
	cmd.Flags().StringP("initiator", "i", "", "address of the game initiator")
	cmd.MarkFlagRequired("initiator")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func duelResolve(cmd *cobra.Command, args []string) {
	initiator, _ := cmd.Flags().GetString("initiator")
	tx, err := dty.CreateDuelResolveTx(initiator)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, tx)
}

// GetCmd show the game of an initiator
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the open or matched game of an initiator",
		Run:   duelGet,
	}
	cmd.Flags().StringP("initiator", "i", "", "address of the game initiator")
	cmd.MarkFlagRequired("initiator")
	return cmd
}

func duelGet(cmd *cobra.Command, args []string) {
	initiator, _ := cmd.Flags().GetString("initiator")
	var res dty.Game
	runQuery(cmd, dty.FuncNameGetDuel, &dty.ReqDuel{Initiator: initiator}, &res)
}

// ListCmd list open or matched games
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open(1) or matched(2) games",
		Run:   duelList,
	}
	cmd.Flags().Int32P("status", "s", dty.DuelStatusOpen, "1: open, 2: matched")
	cmd.Flags().StringP("addr", "a", "", "only games of this address")
	addPageFlags(cmd)
	return cmd
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int32P("count", "c", 0, "page size, the node limit when 0")
	cmd.Flags().Int32P("direction", "r", 0, "0: newest first, 1: oldest first")
	cmd.Flags().Int64P("index", "x", 0, "continue after this index, 0 from the start")
}

func duelList(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &dty.ReqDuelList{Status: status, Addr: addr, Count: count, Direction: direction, Index: index}
	var res dty.ReplyDuelList
	runQuery(cmd, dty.FuncNameListDuels, req, &res)
}

// RecordsCmd list resolved duels
func RecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List resolved duels, of an address when given",
		Run:   duelRecords,
	}
	cmd.Flags().StringP("addr", "a", "", "only duels of this address")
	addPageFlags(cmd)
	return cmd
}

func duelRecords(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &dty.ReqDuelRecords{Addr: addr, Count: count, Direction: direction, Index: index}
	var res dty.ReplyDuelRecords
	runQuery(cmd, dty.FuncNameListDuelRecords, req, &res)
}

// CountCmd number of games that reached a status
func CountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Number of games created(1), joined(2) or resolved(3)",
		Run:   duelCount,
	}
	cmd.Flags().Int32P("status", "s", dty.DuelStatusResolved, "1: created, 2: joined, 3: resolved")
	cmd.Flags().StringP("addr", "a", "", "only games of this address")
	return cmd
}

func duelCount(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	if addr != "" {
		if err := address.CheckAddress(addr); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "invalid address", addr)
			return
		}
	}
	var res types.Int64
	runQuery(cmd, dty.FuncNameGetDuelCount, &dty.ReqDuelCount{Status: status, Addr: addr}, &res)
}

func newQuery(funcName string, req types.Message) *rpctypes.Query4Jrpc {
	return &rpctypes.Query4Jrpc{
		Execer:   dty.DuelX,
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
}

func queryDuel(rpcLaddr, funcName string, req, res types.Message) error {
	client, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		return err
	}
	return client.Call("Query", newQuery(funcName, req), res)
}

func runQuery(cmd *cobra.Command, funcName string, req, res types.Message) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Duel.Query", newQuery(funcName, req), res)
	ctx.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	ctx.Run()
}
