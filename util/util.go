// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util helpers shared by the node, its tests and the test node
package util

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/crypto"
	_ "github.com/33cn/duel/common/crypto/secp256k1" // register the default signer
	"github.com/33cn/duel/common/db"
	"github.com/33cn/duel/common/log"
	cty "github.com/33cn/duel/system/dapp/coins/types"
	"github.com/33cn/duel/types"
)

var ulog = log.New("module", "util")

//Genaddress : generate a address
func Genaddress() (string, crypto.PrivKey) {
	cr, err := crypto.New(types.GetSignName(types.SECP256K1))
	if err != nil {
		panic(err)
	}
	privto, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	return address.PubKeyToAddr(privto.PubKey().Bytes()), privto
}

//CreateCoinsTx : signed coins transfer, to an executor address it lands in the exec account
func CreateCoinsTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	tx := cty.CreateTransfer(to, amount, "")
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// SignTx sign tx with priv and return it
func SignTx(priv crypto.PrivKey, tx *types.Transaction) *types.Transaction {
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// JSONPrint : print in json format
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		t.Error(err)
		return
	}
	t.Log(string(data))
}

//ResetDatadir 重写datadir, 支持 ~/ 与 $TEMP/ 前缀
func ResetDatadir(cfg *types.Config, datadir string) string {
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(usr.HomeDir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := ioutil.TempDir("", "duel-datadir-")
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	if cfg.Log != nil && cfg.Log.LogFile != "" {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
	cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	return datadir
}

//CreateTestDB 创建一个测试数据库
func CreateTestDB() (string, db.DB) {
	dir, err := ioutil.TempDir("", "goleveldb")
	if err != nil {
		panic(err)
	}
	leveldb, err := db.NewGoLevelDB("goleveldb", dir, 128)
	if err != nil {
		panic(err)
	}
	return dir, leveldb
}

//CloseTestDB 关闭并删除测试数据库
func CloseTestDB(dir string, dbm db.DB) {
	dbm.Close()
	err := os.RemoveAll(dir)
	if err != nil {
		ulog.Info("RemoveAll ", "dir", dir, "err", err)
	}
}
