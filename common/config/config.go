// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config load the node toml config
package config

import (
	"encoding/json"

	tml "github.com/BurntSushi/toml"
	"github.com/33cn/duel/types"
	"github.com/pkg/errors"
)

type subModule struct {
	Exec map[string]interface{}
}

// Init decode path into a Config with defaults filled
func Init(path string) (*types.Config, *types.ConfigSubModule, error) {
	var cfg types.Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, nil, errors.Wrapf(err, "decode config %s", path)
	}
	var sub subModule
	if _, err := tml.DecodeFile(path, &sub); err != nil {
		return nil, nil, errors.Wrapf(err, "decode sub config %s", path)
	}
	SetDefault(&cfg)
	return &cfg, parseSub(sub), nil
}

// InitCfgString decode config text
func InitCfgString(cfgstring string) (*types.Config, *types.ConfigSubModule, error) {
	var cfg types.Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub config")
	}
	SetDefault(&cfg)
	return &cfg, parseSub(sub), nil
}

// InitCfg panic on error
func InitCfg(path string) (*types.Config, *types.ConfigSubModule) {
	cfg, sub, err := Init(path)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func parseSub(sub subModule) *types.ConfigSubModule {
	return &types.ConfigSubModule{Exec: parseItem(sub.Exec)}
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}

// SetDefault fill missing sections
func SetDefault(cfg *types.Config) {
	if cfg.Title == "" {
		cfg.Title = "duel"
	}
	if cfg.Log == nil {
		cfg.Log = &types.Log{}
	}
	if cfg.Log.Loglevel == "" {
		cfg.Log.Loglevel = "info"
	}
	if cfg.Log.LogConsoleLevel == "" {
		cfg.Log.LogConsoleLevel = "info"
	}
	if cfg.Log.MaxFileSize == 0 {
		cfg.Log.MaxFileSize = 300
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 100
	}
	if cfg.Store == nil {
		cfg.Store = &types.Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "state"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Store.DbCache == 0 {
		cfg.Store.DbCache = 128
	}
	if cfg.RPC == nil {
		cfg.RPC = &types.RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if len(cfg.RPC.Whitelist) == 0 {
		cfg.RPC.Whitelist = []string{"127.0.0.1"}
	}
	if cfg.RPC.RateLimit > 0 && cfg.RPC.RateBurst == 0 {
		cfg.RPC.RateBurst = int64(cfg.RPC.RateLimit) * 2
	}
	if cfg.Exec == nil {
		cfg.Exec = &types.Exec{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &types.Metrics{}
	}
	if cfg.Metrics.Duration == 0 {
		cfg.Metrics.Duration = 60
	}
}
