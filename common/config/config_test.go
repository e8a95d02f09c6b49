// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cfgstring = `
Title="duel-test"

[log]
loglevel="debug"
logFile="logs/duel.log"

[store]
driver="memdb"

[rpc]
jrpcBindAddr="localhost:9801"
whitelist=["0.0.0.0"]
rateLimit=10.0

[exec]
enable=["coins","duel"]

[exec.sub.duel]
listLimit=20

[[genesis]]
addr="1CbEVT9RnM5oZhWMj4fxUrJX94VtRotzvs"
amount=100000
`

func TestInitCfgString(t *testing.T) {
	cfg, sub, err := InitCfgString(cfgstring)
	require.Nil(t, err)
	assert.Equal(t, "duel-test", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, "info", cfg.Log.LogConsoleLevel)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "state", cfg.Store.Name)
	assert.Equal(t, "localhost:9801", cfg.RPC.JrpcBindAddr)
	assert.Equal(t, int64(20), cfg.RPC.RateBurst)
	assert.Equal(t, []string{"coins", "duel"}, cfg.Exec.Enable)
	require.Len(t, cfg.Genesis, 1)
	assert.Equal(t, int64(100000), cfg.Genesis[0].Amount)

	var duelcfg struct {
		ListLimit int32 `json:"listLimit"`
	}
	require.Contains(t, sub.Exec, "duel")
	require.Nil(t, json.Unmarshal(sub.Exec["duel"], &duelcfg))
	assert.Equal(t, int32(20), duelcfg.ListLimit)
}

func TestInitDefaults(t *testing.T) {
	cfg, sub, err := InitCfgString(`Title="x"`)
	require.Nil(t, err)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, "localhost:8801", cfg.RPC.JrpcBindAddr)
	assert.Equal(t, []string{"127.0.0.1"}, cfg.RPC.Whitelist)
	assert.Equal(t, int64(60), cfg.Metrics.Duration)
	assert.Empty(t, cfg.Exec.Enable)
	assert.Empty(t, sub.Exec)
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duel.toml")
	require.Nil(t, os.WriteFile(path, []byte(cfgstring), 0600))
	cfg, _, err := Init(path)
	require.Nil(t, err)
	assert.Equal(t, "duel-test", cfg.Title)

	_, _, err = Init(filepath.Join(dir, "missing.toml"))
	assert.NotNil(t, err)
}
