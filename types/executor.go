// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
	"sync"
)

// ExecutorType payload and log description of one executor. Action payloads
// carry a Ty field plus one pointer field per action, named after the
// action in the type map.
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	ActionName(tx *Transaction) string
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	CreateTx(action string, message json.RawMessage, amount int64) (*Transaction, error)
}

var (
	executorMap = map[string]ExecutorType{}
	executorMu  sync.RWMutex
)

// RegistorExecutor register the type description of exec, panic on duplicate
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType " + exec)
	}
	executorMap[exec] = util
}

// LoadExecutorType nil if exec is not registered
func LoadExecutorType(exec string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	return executorMap[exec]
}

// ExecTypeBase shared payload handling, child supplies the maps
type ExecTypeBase struct {
	child      ExecutorType
	actionName map[int32]string
}

// SetChild must be called by the concrete executor type constructor
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionName = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionName[ty] = name
	}
}

// GetChild concrete type
func (base *ExecTypeBase) GetChild() ExecutorType {
	return base.child
}

// DecodePayload decode tx payload into a fresh action message
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.GetPayload(), payload); err != nil {
		return nil, ErrDecode
	}
	return payload, nil
}

// DecodePayloadValue action name and the value of the selected action field
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	name, ok := base.actionName[getActionTy(action)]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	val := reflect.ValueOf(action).Elem().FieldByName(name)
	if IsNilVal(val) {
		return "", nilValue, ErrActionNotSupport
	}
	return name, val, nil
}

// ActionName "unknown" when the payload does not decode
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

// CreateTx build an unsigned tx from the json form of one action
func (base *ExecTypeBase) CreateTx(action string, message json.RawMessage, amount int64) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	field, ok := reflect.TypeOf(payload).Elem().FieldByName(action)
	if !ok || field.Type.Kind() != reflect.Ptr {
		return nil, ErrActionNotSupport
	}
	value := reflect.New(field.Type.Elem())
	if len(message) > 0 {
		if err := JSONToPB(message, value.Interface().(Message)); err != nil {
			return nil, err
		}
	}
	pv := reflect.ValueOf(payload).Elem()
	pv.FieldByName(action).Set(value)
	pv.FieldByName("Ty").SetInt(int64(ty))
	return CreateTx(base.child.GetName(), payload, amount), nil
}

func getActionTy(action Message) int32 {
	if a, ok := action.(interface{ GetTy() int32 }); ok {
		return a.GetTy()
	}
	return -1
}
