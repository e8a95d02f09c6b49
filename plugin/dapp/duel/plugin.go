// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package duel escrow duel dapp
package duel

import (
	"github.com/33cn/duel/plugin/dapp/duel/commands"
	"github.com/33cn/duel/plugin/dapp/duel/executor"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     dty.DuelX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.Cmd,
	})
}
