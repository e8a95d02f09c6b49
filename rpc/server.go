// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc server of the duel node.
//
// Every request is a POST of one json rpc call to "/", decoded by the
// net/rpc jsonrpc codec and served by the Duel service. The remote ip must
// be whitelisted, stay under the per-ip rate limit and pass basic auth when
// a username is configured.
package rpc

import (
	"encoding/base64"
	"net"
	"net/http"
	"net/rpc"
	"strings"

	"github.com/33cn/duel/common/log"
	"github.com/33cn/duel/types"
	"github.com/kevinms/leakybucket-go"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

var rlog = log.New("module", "rpc")

// ExecAPI executor calls served over rpc
type ExecAPI interface {
	ExecTx(tx *types.Transaction) (*types.TxResult, error)
	GetTxResult(hash []byte) (*types.TxResult, error)
	NewQueryParam(execer, funcName string) (types.Message, error)
	Query(execer, funcName string, param types.Message) (types.Message, error)
	GetBalance(req *types.ReqBalance) ([]*types.Account, error)
	Height() int64
}

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	cfg       *types.RPC
	s         *rpc.Server
	l         net.Listener
	whitelist map[string]bool
	limiter   *leakybucket.Collector
}

// NewJSONRPCServer new json rpcserver object
func NewJSONRPCServer(cfg *types.RPC, api ExecAPI) (*JSONRPCServer, error) {
	if cfg == nil {
		cfg = &types.RPC{}
	}
	j := &JSONRPCServer{cfg: cfg, s: rpc.NewServer(), whitelist: make(map[string]bool)}
	if err := j.s.RegisterName("Duel", &Duel{api: api}); err != nil {
		return nil, errors.Wrap(err, "register Duel")
	}
	for _, ip := range cfg.Whitelist {
		j.whitelist[ip] = true
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = int64(cfg.RateLimit)
		}
		j.limiter = leakybucket.NewCollector(cfg.RateLimit, burst, true)
	}
	return j, nil
}

// Listen serve on cfg.JrpcBindAddr in the background, returns the bound port
func (j *JSONRPCServer) Listen() (int, error) {
	listener, err := net.Listen("tcp", j.cfg.JrpcBindAddr)
	if err != nil {
		return 0, errors.Wrapf(err, "listen %s", j.cfg.JrpcBindAddr)
	}
	j.l = listener
	go func() {
		err := http.Serve(listener, j.Handler())
		if err != nil && !strings.Contains(err.Error(), "use of closed network connection") {
			rlog.Error("JSONRPCServer serve", "err", err)
		}
	}()
	rlog.Info("JSONRPCServer listen", "addr", listener.Addr().String())
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Close json rpcserver close
func (j *JSONRPCServer) Close() {
	if j.l != nil {
		err := j.l.Close()
		if err != nil {
			rlog.Error("JSONRPCServer close", "err", err)
		}
	}
}

// Handler http handler of the json rpc endpoint
func (j *JSONRPCServer) Handler() http.Handler {
	var handler http.Handler = http.HandlerFunc(j.serveHTTP)
	if j.cfg.EnableCORS {
		handler = cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodPost},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}).Handler(handler)
	}
	return handler
}

func (j *JSONRPCServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if !j.checkIPWhitelist(ip) {
		rlog.Error("JSONRPCServer", "reject ip", ip)
		http.Error(w, "reject", http.StatusForbidden)
		return
	}
	if !j.allow(ip) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}
	if !j.checkBasicAuth(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="duel"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if r.URL.Path != "/" || r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	serverCodec := newServerCodec(&HTTPConn{in: r.Body, out: w})
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := j.s.ServeRequest(serverCodec); err != nil {
		rlog.Debug("Error while serving JSON request", "err", err)
	}
}

func (j *JSONRPCServer) allow(ip string) bool {
	if j.limiter == nil {
		return true
	}
	if j.limiter.Remaining(ip) <= 0 {
		return false
	}
	return j.limiter.Add(ip, 1) == 1
}

func (j *JSONRPCServer) checkBasicAuth(r *http.Request) bool {
	if j.cfg.Username == "" && j.cfg.Password == "" {
		return true
	}
	s := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(s) != 2 {
		return false
	}
	b, err := base64.StdEncoding.DecodeString(s[1])
	if err != nil {
		return false
	}
	pair := strings.SplitN(string(b), ":", 2)
	if len(pair) != 2 {
		return false
	}
	return pair[0] == j.cfg.Username && pair[1] == j.cfg.Password
}

func (j *JSONRPCServer) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if j.whitelist["0.0.0.0"] {
		return true
	}
	return j.whitelist[addr]
}
