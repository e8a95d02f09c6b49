// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Config node configuration, decoded from toml
type Config struct {
	Title   string          `toml:"title"`
	Log     *Log            `toml:"log"`
	Store   *Store          `toml:"store"`
	RPC     *RPC            `toml:"rpc"`
	Exec    *Exec           `toml:"exec"`
	Metrics *Metrics        `toml:"metrics"`
	Genesis []*GenesisAlloc `toml:"genesis"`
}

// ConfigSubModule raw json config of each executor, from [exec.sub.<name>]
type ConfigSubModule struct {
	Exec map[string][]byte
}

// Log log config
type Log struct {
	// debug, info, warn, error, crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// empty means no file output
	LogFile string `toml:"logFile"`
	// MB
	MaxFileSize uint32 `toml:"maxFileSize"`
	MaxBackups  uint32 `toml:"maxBackups"`
	// days
	MaxAge         uint32 `toml:"maxAge"`
	LocalTime      bool   `toml:"localTime"`
	Compress       bool   `toml:"compress"`
	CallerFile     bool   `toml:"callerFile"`
	CallerFunction bool   `toml:"callerFunction"`
}

// Store persistent kv store config
type Store struct {
	Name string `toml:"name"`
	// leveldb, memdb, badger
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// RPC json rpc server config
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr"`
	Whitelist    []string `toml:"whitelist"`
	EnableCORS   bool     `toml:"enableCORS"`
	// requests per second per remote ip, 0 disables the limiter
	RateLimit float64 `toml:"rateLimit"`
	RateBurst int64   `toml:"rateBurst"`
	Username  string  `toml:"username"`
	Password  string  `toml:"password"`
}

// Exec executors enabled on this node
type Exec struct {
	Enable []string `toml:"enable"`
}

// Metrics go-metrics reporter config
type Metrics struct {
	Enable bool `toml:"enable"`
	// seconds between two reports
	Duration int64 `toml:"duration"`
}

// GenesisAlloc coins credited once on an empty store
type GenesisAlloc struct {
	Addr string `toml:"addr"`
	// whole coins
	Amount int64 `toml:"amount"`
}
