// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/33cn/duel/common"
	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/rpc/jsonclient"
	rpctypes "github.com/33cn/duel/rpc/types"
	ctypes "github.com/33cn/duel/system/dapp/coins/types"
	"github.com/33cn/duel/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExecAPI struct {
	mock.Mock
}

func (m *mockExecAPI) ExecTx(tx *types.Transaction) (*types.TxResult, error) {
	args := m.Called(tx)
	r, _ := args.Get(0).(*types.TxResult)
	return r, args.Error(1)
}

func (m *mockExecAPI) GetTxResult(hash []byte) (*types.TxResult, error) {
	args := m.Called(hash)
	r, _ := args.Get(0).(*types.TxResult)
	return r, args.Error(1)
}

func (m *mockExecAPI) NewQueryParam(execer, funcName string) (types.Message, error) {
	args := m.Called(execer, funcName)
	r, _ := args.Get(0).(types.Message)
	return r, args.Error(1)
}

func (m *mockExecAPI) Query(execer, funcName string, param types.Message) (types.Message, error) {
	args := m.Called(execer, funcName, param)
	r, _ := args.Get(0).(types.Message)
	return r, args.Error(1)
}

func (m *mockExecAPI) GetBalance(req *types.ReqBalance) ([]*types.Account, error) {
	args := m.Called(req)
	r, _ := args.Get(0).([]*types.Account)
	return r, args.Error(1)
}

func (m *mockExecAPI) Height() int64 {
	return int64(m.Called().Int(0))
}

func newTestServer(t *testing.T, cfg *types.RPC, api ExecAPI) *httptest.Server {
	j, err := NewJSONRPCServer(cfg, api)
	require.Nil(t, err)
	ts := httptest.NewServer(j.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, url string) *jsonclient.JSONClient {
	client, err := jsonclient.NewJSONClient(url)
	require.Nil(t, err)
	return client
}

func TestVersion(t *testing.T) {
	api := &mockExecAPI{}
	api.On("Height").Return(7)
	ts := newTestServer(t, nil, api)

	var res rpctypes.VersionInfo
	err := newClient(t, ts.URL).Call("Version", nil, &res)
	require.Nil(t, err)
	assert.Equal(t, types.Version, res.Version)
	assert.Equal(t, int64(7), res.Height)
}

func TestGetBalance(t *testing.T) {
	addr := address.ExecAddress("rpc-user")
	api := &mockExecAPI{}
	api.On("GetBalance", &types.ReqBalance{Addresses: []string{addr}}).
		Return([]*types.Account{{Addr: addr, Balance: 10 * types.Coin, Frozen: 1}}, nil)
	ts := newTestServer(t, nil, api)

	var res []*rpctypes.Account
	err := newClient(t, ts.URL).Call("GetBalance", &rpctypes.ReqBalance{Addresses: []string{addr}}, &res)
	require.Nil(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, addr, res[0].Addr)
	assert.Equal(t, 10*types.Coin, res[0].Balance)
	assert.Equal(t, int64(1), res[0].Frozen)
	api.AssertExpectations(t)
}

func TestQuery(t *testing.T) {
	addr := address.ExecAddress("rpc-user")
	api := &mockExecAPI{}
	api.On("NewQueryParam", "coins", "GetAddrReciver").Return(&types.ReqAddr{}, nil)
	api.On("Query", "coins", "GetAddrReciver", &types.ReqAddr{Addr: addr}).Return(&types.Int64{Data: 5}, nil)
	api.On("NewQueryParam", "coins", "Nope").Return(nil, types.ErrQueryNotSupport)
	ts := newTestServer(t, nil, api)
	client := newClient(t, ts.URL)

	var res types.Int64
	err := client.Call("Query", &rpctypes.Query4Jrpc{
		Execer:   "coins",
		FuncName: "GetAddrReciver",
		Payload:  []byte(`{"addr":"` + addr + `"}`),
	}, &res)
	require.Nil(t, err)
	assert.Equal(t, int64(5), res.Data)

	err = client.Call("Query", &rpctypes.Query4Jrpc{Execer: "coins", FuncName: "Nope"}, &res)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrQueryNotSupport.Error(), err.Error())

	err = client.Call("Query", &rpctypes.Query4Jrpc{
		Execer:   "coins",
		FuncName: "GetAddrReciver",
		Payload:  []byte(`{"unknown":1}`),
	}, &res)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), types.ErrInvalidParam.Error())
}

func TestSendTransaction(t *testing.T) {
	to := address.ExecAddress("rpc-user")
	tx := ctypes.CreateTransfer(to, types.Coin, "hi")
	hash := tx.Hash()
	api := &mockExecAPI{}
	api.On("ExecTx", mock.AnythingOfType("*types.Transaction")).Return(&types.TxResult{
		Hash:    hash,
		Height:  3,
		Tx:      tx,
		Receipt: &types.ReceiptData{Ty: types.ExecOk},
	}, nil).Once()
	api.On("ExecTx", mock.AnythingOfType("*types.Transaction")).Return(nil, types.ErrNoBalance).Once()
	ts := newTestServer(t, nil, api)
	client := newClient(t, ts.URL)

	var res rpctypes.TxResult
	err := client.Call("SendTransaction", &rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, &res)
	require.Nil(t, err)
	assert.Equal(t, common.ToHex(hash), res.Hash)
	assert.Equal(t, int64(3), res.Height)
	assert.Equal(t, "coins", res.Tx.Execer)
	assert.Equal(t, "Transfer", res.Tx.ActionName)
	assert.Equal(t, "ExecOk", res.Receipt.TyName)

	err = client.Call("SendTransaction", &rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, &res)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrNoBalance.Error(), err.Error())

	err = client.Call("SendTransaction", &rpctypes.RawParm{Data: "zz"}, &res)
	require.NotNil(t, err)
	api.AssertExpectations(t)
}

func TestGetTxResult(t *testing.T) {
	api := &mockExecAPI{}
	api.On("GetTxResult", []byte{1, 2}).Return(nil, types.ErrNotFound)
	ts := newTestServer(t, nil, api)

	var res rpctypes.TxResult
	err := newClient(t, ts.URL).Call("GetTxResult", &rpctypes.QueryParm{Hash: "0x0102"}, &res)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrNotFound.Error(), err.Error())
}

func TestBasicAuth(t *testing.T) {
	api := &mockExecAPI{}
	api.On("Height").Return(1)
	ts := newTestServer(t, &types.RPC{Username: "duel", Password: "secret"}, api)

	var res rpctypes.VersionInfo
	err := newClient(t, ts.URL).Call("Version", nil, &res)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "401")

	authURL := strings.Replace(ts.URL, "http://", "http://duel:secret@", 1)
	err = newClient(t, authURL).Call("Version", nil, &res)
	require.Nil(t, err)
	assert.Equal(t, int64(1), res.Height)
}

func TestRateLimit(t *testing.T) {
	api := &mockExecAPI{}
	api.On("Height").Return(1)
	ts := newTestServer(t, &types.RPC{RateLimit: 0.001, RateBurst: 1}, api)
	client := newClient(t, ts.URL)

	var res rpctypes.VersionInfo
	require.Nil(t, client.Call("Version", nil, &res))
	err := client.Call("Version", nil, &res)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCheckIPWhitelist(t *testing.T) {
	j, err := NewJSONRPCServer(&types.RPC{Whitelist: []string{"10.0.0.1"}}, &mockExecAPI{})
	require.Nil(t, err)
	assert.True(t, j.checkIPWhitelist("127.0.0.1"))
	assert.True(t, j.checkIPWhitelist("::1"))
	assert.True(t, j.checkIPWhitelist("10.0.0.1"))
	assert.True(t, j.checkIPWhitelist("::ffff:10.0.0.1"))
	assert.False(t, j.checkIPWhitelist("10.0.0.2"))
	assert.False(t, j.checkIPWhitelist("bad"))

	j, err = NewJSONRPCServer(&types.RPC{Whitelist: []string{"0.0.0.0"}}, &mockExecAPI{})
	require.Nil(t, err)
	assert.True(t, j.checkIPWhitelist("10.0.0.2"))
}

func TestRejectPath(t *testing.T) {
	ts := newTestServer(t, &types.RPC{EnableCORS: true}, &mockExecAPI{})
	resp, err := http.Get(ts.URL + "/")
	require.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/", nil)
	require.Nil(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err = http.DefaultClient.Do(req)
	require.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestJSONClientNoServer(t *testing.T) {
	client := newClient(t, "127.0.0.1:1")
	var res rpctypes.VersionInfo
	assert.NotNil(t, client.Call("Version", nil, &res))
}
