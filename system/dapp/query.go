// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/33cn/duel/types"
)

var typeOfMessage = reflect.TypeOf((*types.Message)(nil)).Elem()

func (d *DriverBase) queryMethod(funcName string) (reflect.Method, error) {
	method, ok := d.funcmap["Query_"+funcName]
	if !ok {
		return method, types.ErrQueryNotSupport
	}
	// receiver and one request message
	if method.Type.NumIn() != 2 || !method.Type.In(1).Implements(typeOfMessage) {
		return method, types.ErrQueryNotSupport
	}
	return method, nil
}

// NewQueryParam empty request message of Query_<funcName>
func (d *DriverBase) NewQueryParam(funcName string) (types.Message, error) {
	method, err := d.queryMethod(funcName)
	if err != nil {
		return nil, err
	}
	in := method.Type.In(1)
	if in.Kind() != reflect.Ptr {
		return nil, types.ErrQueryNotSupport
	}
	return reflect.New(in.Elem()).Interface().(types.Message), nil
}

// Query call Query_<funcName> of the child
func (d *DriverBase) Query(funcName string, params types.Message) (msg types.Message, err error) {
	method, err := d.queryMethod(funcName)
	if err != nil {
		blog.Debug("Query", "funcName", funcName, "err", err)
		return nil, err
	}
	if params == nil || reflect.TypeOf(params) != method.Type.In(1) {
		return nil, types.ErrInvalidParam
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call query error", "funcName", funcName, "info", r)
			err = types.ErrQueryNotSupport
			msg = nil
		}
	}()
	valueret := method.Func.Call([]reflect.Value{d.childValue, reflect.ValueOf(params)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		r, ok := r1.(types.Message)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		msg = r
	}
	if err := toError(valueret[1]); err != nil {
		return nil, err
	}
	return msg, nil
}
