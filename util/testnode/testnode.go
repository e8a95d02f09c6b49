// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 这个包提供一个通用的测试节点，用于单元测试和集成测试。
//
// The node runs on a memdb store with every plugin enabled, the json rpc is
// bound to a random local port and the genesis key holds the whole supply.
package testnode

import (
	"fmt"

	"github.com/33cn/duel/common"
	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/config"
	"github.com/33cn/duel/common/crypto"
	"github.com/33cn/duel/common/crypto/secp256k1"
	"github.com/33cn/duel/common/log"
	"github.com/33cn/duel/executor"
	_ "github.com/33cn/duel/plugin" // register the plugins
	"github.com/33cn/duel/rpc/jsonclient"
	rpctypes "github.com/33cn/duel/rpc/types"
	_ "github.com/33cn/duel/system" // register the system drivers
	"github.com/33cn/duel/types"
	"github.com/33cn/duel/util"
	"github.com/33cn/duel/util/cli"
)

var tlog = log.New("module", "testnode")

// GenesisPrivKeyHex key of the genesis address of the default config
const GenesisPrivKeyHex = "0xCC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944"

// GenesisAmount coins of the genesis address in the default config
const GenesisAmount = 100000000

var (
	genesisPriv crypto.PrivKey
	genesisAddr string
)

func init() {
	var err error
	genesisPriv, err = crypto.DecodePrivKey(secp256k1.Driver{}, GenesisPrivKeyHex)
	if err != nil {
		panic(err)
	}
	genesisAddr = address.PubKeyToAddr(genesisPriv.PubKey().Bytes())
	log.SetLogLevel("error")
}

var cfgstring = `
Title="duel-test"

[store]
name = "state"
driver = "memdb"
dbPath = "datadir"
dbCache = 64

[rpc]
jrpcBindAddr = "localhost:0"
whitelist = ["127.0.0.1"]

[exec.sub.duel]
listLimit = 10

[[genesis]]
addr = "%s"
amount = %d
`

// DuelMock in-process duel node
type DuelMock struct {
	node   *cli.Node
	cfg    *types.Config
	client *jsonclient.JSONClient
}

// GetDefaultConfig memdb store, random rpc port, genesis to GetGenesisAddress
func GetDefaultConfig() (*types.Config, *types.ConfigSubModule) {
	cfg, sub, err := config.InitCfgString(fmt.Sprintf(cfgstring, genesisAddr, GenesisAmount))
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

// New node with the default config, started
func New() *DuelMock {
	cfg, sub := GetDefaultConfig()
	return NewWithConfig(cfg, sub)
}

// NewWithConfig node with cfg, started
func NewWithConfig(cfg *types.Config, sub *types.ConfigSubModule) *DuelMock {
	node, err := cli.NewNode(cfg, sub)
	if err != nil {
		panic(err)
	}
	if err := node.Start(); err != nil {
		node.Close()
		panic(err)
	}
	url := fmt.Sprintf("http://localhost:%d", node.Port())
	client, err := jsonclient.NewJSONClient(url)
	if err != nil {
		node.Close()
		panic(err)
	}
	tlog.Info("test node started", "url", url)
	return &DuelMock{node: node, cfg: cfg, client: client}
}

// GetCfg config of the node
func (mock *DuelMock) GetCfg() *types.Config {
	return mock.cfg
}

// GetExec executor of the node
func (mock *DuelMock) GetExec() *executor.Executor {
	return mock.node.Executor()
}

// GetJSONC json rpc client of the node
func (mock *DuelMock) GetJSONC() *jsonclient.JSONClient {
	return mock.client
}

// GetURL json rpc url of the node
func (mock *DuelMock) GetURL() string {
	return fmt.Sprintf("http://localhost:%d", mock.node.Port())
}

// GetGenesisKey key of the genesis address
func (mock *DuelMock) GetGenesisKey() crypto.PrivKey {
	return genesisPriv
}

// GetGenesisAddress genesis address of the default config
func (mock *DuelMock) GetGenesisAddress() string {
	return genesisAddr
}

// SendTx sign tx with priv and execute it through the json rpc
func (mock *DuelMock) SendTx(priv crypto.PrivKey, tx *types.Transaction) (*rpctypes.TxResult, error) {
	util.SignTx(priv, tx)
	var res rpctypes.TxResult
	err := mock.client.Call("SendTransaction", &rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// NewAccount fresh key funded with amount coins from the genesis address
func (mock *DuelMock) NewAccount(amount int64) (string, crypto.PrivKey, error) {
	addr, priv := util.Genaddress()
	if amount == 0 {
		return addr, priv, nil
	}
	_, err := mock.SendTx(genesisPriv, util.CreateCoinsTx(genesisPriv, addr, amount*types.Coin))
	if err != nil {
		return "", nil, err
	}
	return addr, priv, nil
}

// Close the node
func (mock *DuelMock) Close() {
	mock.node.Close()
}
