// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/33cn/duel/common"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/types"
	"github.com/33cn/duel/util/cli"
	"github.com/33cn/duel/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, url string, args ...string) (string, string) {
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(url)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestNodeDefaults(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	assert.NotNil(t, mock.GetExec())
	assert.Equal(t, int64(0), mock.GetExec().Height())
	assert.Equal(t, "memdb", mock.GetCfg().Store.Driver)
}

func TestCommands(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	url := mock.GetURL()

	out, _ := run(t, url, "version")
	assert.Contains(t, out, types.Version)

	alice, alicePriv, err := mock.NewAccount(100)
	require.NoError(t, err)
	aliceKey := common.ToHex(alicePriv.Bytes())
	_, bobPriv, err := mock.NewAccount(100)
	require.NoError(t, err)
	bobKey := common.ToHex(bobPriv.Bytes())

	out, _ = run(t, url, "account", "addr", "-k", aliceKey)
	assert.Contains(t, out, alice)

	out, errOut := run(t, url, "duel", "create", "-d", "60", "-t", "1", "-f", "10", "-k", aliceKey)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "ExecOk")

	out, _ = run(t, url, "duel", "get", "-i", alice)
	var game dty.Game
	require.NoError(t, json.Unmarshal([]byte(out), &game))
	assert.Equal(t, alice, game.Initiator)
	assert.Equal(t, 10*types.Coin, game.Fee)

	// payment taken from the open game
	out, errOut = run(t, url, "duel", "join", "-i", alice, "-d", "40", "-k", bobKey)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "ExecOk")

	_, errOut = run(t, url, "duel", "join", "-i", alice, "-d", "40", "-k", bobKey)
	assert.Contains(t, errOut, dty.ErrGameAlreadyJoined.Error())

	out, errOut = run(t, url, "duel", "resolve", "-i", alice, "-k", bobKey)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "LogDuelResolve")

	out, _ = run(t, url, "duel", "count", "-s", "3")
	assert.Contains(t, out, "1")

	out, _ = run(t, url, "account", "balance", "-a", alice, "-e", dty.DuelX)
	assert.Contains(t, out, `"frozen": "0.0000"`)

	_, errOut = run(t, url, "duel", "get", "-i", alice)
	assert.Contains(t, errOut, dty.ErrGameNotFound.Error())
}
