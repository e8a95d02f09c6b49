// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"

	"github.com/33cn/duel/common"
	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/crypto"
	proto "github.com/golang/protobuf/proto"
)

// Signature of a transaction
type Signature struct {
	Ty        int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

func (m *Signature) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *Signature) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

func (m *Signature) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// Transaction a signed call of an executor action.
// Amount is the payment attached to the call; the runtime moves it from the
// sender's coins balance into the sender's account inside the executor
// before the action runs.
type Transaction struct {
	Execer    []byte     `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload   []byte     `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Signature *Signature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	Amount    int64      `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Nonce     int64      `protobuf:"varint,5,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

func (m *Transaction) GetExecer() []byte {
	if m != nil {
		return m.Execer
	}
	return nil
}

func (m *Transaction) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *Transaction) GetSignature() *Signature {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *Transaction) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Transaction) GetNonce() int64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// CreateTx build an unsigned tx for execer, nonce is random
func CreateTx(execer string, action Message, amount int64) *Transaction {
	nonce := int64(binary.BigEndian.Uint64(crypto.CRandBytes(8)) >> 1)
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Amount:  amount,
		Nonce:   nonce,
	}
}

func clone(tx *Transaction) *Transaction {
	copytx := &Transaction{}
	copytx.Execer = tx.Execer
	copytx.Payload = tx.Payload
	copytx.Signature = tx.Signature
	copytx.Amount = tx.Amount
	copytx.Nonce = tx.Nonce
	return copytx
}

// Hash tx hash, signature excluded
func (tx *Transaction) Hash() []byte {
	copytx := clone(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return common.Sha256(data)
}

// Size encoded size
func (tx *Transaction) Size() int {
	return Size(tx)
}

// Sign sign the tx with priv
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign verify the signature against the tx body
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := clone(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return CheckSign(data, tx.GetSignature())
}

// From sender address derived from the signing public key
func (tx *Transaction) From() string {
	return address.PubKeyToAddr(tx.GetSignature().GetPubkey())
}
