// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// CoinsAction one coins action, Ty selects the field
type CoinsAction struct {
	Transfer *CoinsTransfer `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Withdraw *CoinsWithdraw `protobuf:"bytes,2,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
	Ty       int32          `protobuf:"varint,3,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

func (m *CoinsAction) GetWithdraw() *CoinsWithdraw {
	if m != nil {
		return m.Withdraw
	}
	return nil
}

func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// CoinsTransfer move amount to To, an executor address deposits into its exec account
type CoinsTransfer struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

func (m *CoinsTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

func (m *CoinsTransfer) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinsTransfer) GetNote() string {
	if m != nil {
		return m.Note
	}
	return ""
}

// CoinsWithdraw move active exec balance back to the coins balance
type CoinsWithdraw struct {
	ExecName string `protobuf:"bytes,1,opt,name=execName,proto3" json:"execName,omitempty"`
	Amount   int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CoinsWithdraw) Reset()         { *m = CoinsWithdraw{} }
func (m *CoinsWithdraw) String() string { return proto.CompactTextString(m) }
func (*CoinsWithdraw) ProtoMessage()    {}

func (m *CoinsWithdraw) GetExecName() string {
	if m != nil {
		return m.ExecName
	}
	return ""
}

func (m *CoinsWithdraw) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}
