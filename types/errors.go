// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrAmount            = errors.New("ErrAmount")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport   = errors.New("ErrQueryNotSupport")
	ErrExecNotFound      = errors.New("ErrExecNotFound")
	ErrExecNameNotAllow  = errors.New("ErrExecNameNotAllow")
	ErrSign              = errors.New("ErrSign")
	ErrNoSignature       = errors.New("ErrNoSignature")
	ErrTxDup             = errors.New("ErrTxDup")
	ErrTxMsgSizeTooBig   = errors.New("ErrTxMsgSizeTooBig")
	ErrEmpty             = errors.New("ErrEmpty")
	ErrDecode            = errors.New("ErrDecode")
	ErrPaymentNotAllowed = errors.New("ErrPaymentNotAllowed")
	ErrGenesisApplied    = errors.New("ErrGenesisApplied")
	ErrMethodReturnType  = errors.New("ErrMethodReturnType")
)
