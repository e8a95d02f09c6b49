// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/duel/common/address"
	ctypes "github.com/33cn/duel/system/dapp/coins/types"
	commandtypes "github.com/33cn/duel/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Send system coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
		SendToExecCmd(),
		WithdrawCmd(),
	)
	return cmd
}

// TransferCmd transfer coins to an address
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   transfer,
	}
	addTransferFlags(cmd)
	return cmd
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount in coins, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	commandtypes.AddKeyFlag(cmd)
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	if err := address.CheckAddress(to); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "invalid address", to)
		return
	}
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, ctypes.CreateTransfer(to, amount, note))
}

// SendToExecCmd deposit coins into the account of the sender in an executor
func SendToExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send_exec",
		Short: "Deposit coins into an executor",
		Run:   sendToExec,
	}
	addExecAmountFlags(cmd)
	return cmd
}

func addExecAmountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	cmd.Flags().StringP("amount", "a", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	commandtypes.AddKeyFlag(cmd)
}

func sendToExec(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("exec")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, ctypes.CreateTransfer(address.ExecAddress(execer), amount, ""))
}

// WithdrawCmd withdraw the active coins of the sender from an executor
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from an executor",
		Run:   withdraw,
	}
	addExecAmountFlags(cmd)
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("exec")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, ctypes.CreateWithdraw(execer, amount))
}
