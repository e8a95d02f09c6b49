// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/33cn/duel/common"
	"github.com/33cn/duel/common/crypto"
	"github.com/33cn/duel/common/crypto/secp256k1"
	"github.com/33cn/duel/rpc/jsonclient"
	rpctypes "github.com/33cn/duel/rpc/types"
	"github.com/33cn/duel/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DecodeAccount format the balances as coins
func DecodeAccount(acc *rpctypes.Account) *AccountResult {
	return &AccountResult{
		Addr:     acc.Addr,
		Currency: acc.Currency,
		Balance:  types.FormatCoins(acc.Balance),
		Frozen:   types.FormatCoins(acc.Frozen),
	}
}

// GetAmountValue parse a coins flag like "1.5"
func GetAmountValue(cmd *cobra.Command, field string) (int64, error) {
	s, _ := cmd.Flags().GetString(field)
	return types.ParseCoins(s)
}

// AddKeyFlag private key of the signer, 0x hex or base58
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key of the sender, 0x hex or base58")
	cmd.MarkFlagRequired("key")
}

// LoadPrivKey secp256k1 key from its text
func LoadPrivKey(text string) (crypto.PrivKey, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return crypto.DecodePrivKey(c, text)
}

// SignTx sign with the key flag of cmd, returns the hex of the signed tx
func SignTx(cmd *cobra.Command, tx *types.Transaction) (string, error) {
	keyText, _ := cmd.Flags().GetString("key")
	priv, err := LoadPrivKey(keyText)
	if err != nil {
		return "", errors.Wrap(err, "load key")
	}
	tx.Sign(types.SECP256K1, priv)
	return common.ToHex(types.Encode(tx)), nil
}

// SendTx sign and send tx, the rendered result is printed
func SendTx(cmd *cobra.Command, tx *types.Transaction) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, err := SignTx(cmd, tx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Duel.SendTransaction", &rpctypes.RawParm{Data: data}, &res)
	ctx.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	ctx.Run()
}
