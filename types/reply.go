// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import proto "github.com/golang/protobuf/proto"

// ReplyString single string reply
type ReplyString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReplyString) Reset()         { *m = ReplyString{} }
func (m *ReplyString) String() string { return proto.CompactTextString(m) }
func (*ReplyString) ProtoMessage()    {}

func (m *ReplyString) GetData() string {
	if m != nil {
		return m.Data
	}
	return ""
}

// ReqHash hash lookup
type ReqHash struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *ReqHash) Reset()         { *m = ReqHash{} }
func (m *ReqHash) String() string { return proto.CompactTextString(m) }
func (*ReqHash) ProtoMessage()    {}

func (m *ReqHash) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

// TxResult receipt of an executed tx with its position
type TxResult struct {
	Hash      []byte       `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	Height    int64        `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	Blocktime int64        `protobuf:"varint,3,opt,name=blocktime,proto3" json:"blocktime,omitempty"`
	Tx        *Transaction `protobuf:"bytes,4,opt,name=tx,proto3" json:"tx,omitempty"`
	Receipt   *ReceiptData `protobuf:"bytes,5,opt,name=receipt,proto3" json:"receipt,omitempty"`
}

func (m *TxResult) Reset()         { *m = TxResult{} }
func (m *TxResult) String() string { return proto.CompactTextString(m) }
func (*TxResult) ProtoMessage()    {}

func (m *TxResult) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

func (m *TxResult) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *TxResult) GetBlocktime() int64 {
	if m != nil {
		return m.Blocktime
	}
	return 0
}

func (m *TxResult) GetTx() *Transaction {
	if m != nil {
		return m.Tx
	}
	return nil
}

func (m *TxResult) GetReceipt() *ReceiptData {
	if m != nil {
		return m.Receipt
	}
	return nil
}

// CalcTxResultKey local key of a tx result
func CalcTxResultKey(hash []byte) []byte {
	return append([]byte(LocalPrefix+TxResultPrefix), hash...)
}

// Int64 single int64 reply
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return proto.CompactTextString(m) }
func (*Int64) ProtoMessage()    {}

func (m *Int64) GetData() int64 {
	if m != nil {
		return m.Data
	}
	return 0
}
