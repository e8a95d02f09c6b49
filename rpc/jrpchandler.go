// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"github.com/33cn/duel/common"
	rpctypes "github.com/33cn/duel/rpc/types"
	"github.com/33cn/duel/types"
	"github.com/pkg/errors"
)

// Duel json rpc service
type Duel struct {
	api ExecAPI
}

// SendTransaction execute a signed tx given in hex, replies the rendered result
func (d *Duel) SendTransaction(in rpctypes.RawParm, result *interface{}) error {
	data, err := common.FromHex(in.Data)
	if err != nil {
		return errors.Wrap(types.ErrInvalidParam, "data is not hex")
	}
	var tx types.Transaction
	if err := types.Decode(data, &tx); err != nil {
		return errors.Wrap(types.ErrDecode, "tx")
	}
	rlog.Debug("SendTransaction", "execer", string(tx.Execer), "amount", tx.Amount)
	reply, err := d.api.ExecTx(&tx)
	if err != nil {
		return err
	}
	*result, err = rpctypes.DecodeTxResult(reply)
	return err
}

// GetTxResult result of an executed tx by hash
func (d *Duel) GetTxResult(in rpctypes.QueryParm, result *interface{}) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return errors.Wrap(types.ErrInvalidParam, "hash is not hex")
	}
	reply, err := d.api.GetTxResult(hash)
	if err != nil {
		return err
	}
	*result, err = rpctypes.DecodeTxResult(reply)
	return err
}

// Query read only call of an executor, payload and reply are the json of the messages
func (d *Duel) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	param, err := d.api.NewQueryParam(in.Execer, in.FuncName)
	if err != nil {
		return err
	}
	if len(in.Payload) != 0 && string(in.Payload) != "null" {
		if err := types.JSONToPB(in.Payload, param); err != nil {
			return errors.Wrap(types.ErrInvalidParam, err.Error())
		}
	}
	reply, err := d.api.Query(in.Execer, in.FuncName, param)
	if err != nil {
		return err
	}
	data, err := types.PBToJSON(reply)
	if err != nil {
		return err
	}
	*result = json.RawMessage(data)
	return nil
}

// GetBalance balances of the coins table, or of an exec table when Execer is set
func (d *Duel) GetBalance(in rpctypes.ReqBalance, result *interface{}) error {
	accs, err := d.api.GetBalance(&types.ReqBalance{Addresses: in.Addresses, Execer: in.Execer})
	if err != nil {
		return err
	}
	*result = rpctypes.ConvertAccounts(accs)
	return nil
}

// Version node version
func (d *Duel) Version(in *types.ReqNil, result *interface{}) error {
	*result = &rpctypes.VersionInfo{Version: types.Version, Height: d.api.Height()}
	return nil
}
