// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	clog "github.com/33cn/duel/common/log"
	"github.com/33cn/duel/pluginmgr"
	"github.com/33cn/duel/system/dapp/commands"
	"github.com/spf13/cobra"
)

// NewRootCmd root of the cli, plugin commands included
func NewRootCmd(rpcAddr string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "duel-cli",
		Short: "duel client tools",
	}
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.CoinsCmd(),
		commands.TxCmd(),
		commands.VersionCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	return rootCmd
}

//Run :
func Run(rpcAddr string) {
	clog.SetLogLevel("error")
	if err := NewRootCmd(rpcAddr).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
