// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunDuel函数会加载各个模块，组合成duel节点程序,
// Run是命令行工具的入口
package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/33cn/duel/common/config"
	dbm "github.com/33cn/duel/common/db"
	clog "github.com/33cn/duel/common/log"
	"github.com/33cn/duel/executor"
	"github.com/33cn/duel/metrics"
	"github.com/33cn/duel/pluginmgr"
	"github.com/33cn/duel/rpc"
	"github.com/33cn/duel/types"
	"github.com/33cn/duel/util"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("f", "", "configfile")
	versionCmd = flag.Bool("v", false, "version")
	datadir    = flag.String("datadir", "", "data dir of the store and logs, ~/ and $TEMP/ expanded")
	log        = clog.New("module", "main")
)

// Node the modules of a running duel node
type Node struct {
	cfg      *types.Config
	db       dbm.DB
	exec     *executor.Executor
	rpc      *rpc.JSONRPCServer
	reporter *metrics.Reporter
	port     int
}

// NewNode open the store, init the executors and apply the genesis
func NewNode(cfg *types.Config, sub *types.ConfigSubModule) (*Node, error) {
	if sub == nil {
		sub = &types.ConfigSubModule{}
	}
	pluginmgr.InitExec(sub.Exec)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	exec := executor.New(db, cfg.Exec)
	if len(cfg.Genesis) > 0 {
		err := exec.Genesis(cfg.Genesis)
		if err != nil && errors.Cause(err) != types.ErrGenesisApplied {
			db.Close()
			return nil, err
		}
	}
	server, err := rpc.NewJSONRPCServer(cfg.RPC, exec)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Node{cfg: cfg, db: db, exec: exec, rpc: server}, nil
}

// Start serve the json rpc and report metrics
func (n *Node) Start() error {
	port, err := n.rpc.Listen()
	if err != nil {
		return err
	}
	n.port = port
	n.reporter = metrics.StartMetrics(n.cfg.Metrics)
	return nil
}

// Port bound port of the json rpc
func (n *Node) Port() int {
	return n.port
}

// Executor of the node
func (n *Node) Executor() *executor.Executor {
	return n.exec
}

// Close every module, the store last
func (n *Node) Close() {
	log.Info("begin close rpc module")
	n.rpc.Close()
	log.Info("begin close metrics module")
	n.reporter.Stop()
	log.Info("begin close store module")
	n.db.Close()
}

//RunDuel : run the duel node until SIGINT or SIGTERM
func RunDuel(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(types.Version)
		return
	}
	if *configPath == "" {
		if name == "" {
			*configPath = "duel.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	cfg, sub, err := config.Init(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *datadir != "" {
		util.ResetDatadir(cfg, *datadir)
	}
	clog.SetFileLog(cfg.Log)
	defer clog.Close()
	log.Info(cfg.Title+" duel:"+types.Version, "config", *configPath)

	node, err := NewNode(cfg, sub)
	if err != nil {
		log.Crit("NewNode", "err", err)
		os.Exit(1)
	}
	defer node.Close()
	if err := node.Start(); err != nil {
		log.Crit("Start", "err", err)
		return
	}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	s := <-interrupt
	log.Info("exit", "signal", s.String())
}
