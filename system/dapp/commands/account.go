// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/duel/common"
	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/crypto"
	"github.com/33cn/duel/common/crypto/secp256k1"
	"github.com/33cn/duel/rpc/jsonclient"
	rpctypes "github.com/33cn/duel/rpc/types"
	commandtypes "github.com/33cn/duel/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenKeyCmd(),
		KeyToAddrCmd(),
		ExecAddrCmd(),
		GetBalanceCmd(),
	)
	return cmd
}

// GenKeyCmd generate a secp256k1 key pair offline
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a private key and its address",
		Run:   genKey,
	}
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	priv, err := c.GenKey()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	printJSON(cmd, &commandtypes.KeyResult{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(priv.PubKey().Bytes()),
		Addr:    address.PubKeyToAddr(priv.PubKey().Bytes()),
	})
}

// KeyToAddrCmd address of a private key
func KeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get the address of a private key",
		Run:   keyToAddr,
	}
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func keyToAddr(cmd *cobra.Command, args []string) {
	keyText, _ := cmd.Flags().GetString("key")
	priv, err := commandtypes.LoadPrivKey(keyText)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), address.PubKeyToAddr(priv.PubKey().Bytes()))
}

// ExecAddrCmd address of an executor
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get the address of an executor",
		Run:   execAddr,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func execAddr(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("exec")
	fmt.Fprintln(cmd.OutOrStdout(), address.ExecAddress(execer))
}

// GetBalanceCmd get balance of an execer
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("addr", "a", nil, "account addresses")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "executor name, empty for the coins balance")
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addrs, _ := cmd.Flags().GetStringSlice("addr")
	execer, _ := cmd.Flags().GetString("exec")
	for _, addr := range addrs {
		if err := address.CheckAddress(addr); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "invalid address", addr)
			return
		}
	}
	params := &rpctypes.ReqBalance{Addresses: addrs, Execer: execer}
	var res []*rpctypes.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Duel.GetBalance", params, &res)
	ctx.SetResultCb(parseBalance)
	ctx.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	ctx.Run()
}

func parseBalance(res interface{}) (interface{}, error) {
	accs := *res.(*[]*rpctypes.Account)
	result := make([]*commandtypes.AccountResult, 0, len(accs))
	for _, acc := range accs {
		result = append(result, commandtypes.DecodeAccount(acc))
	}
	return result, nil
}

func printJSON(cmd *cobra.Command, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}
