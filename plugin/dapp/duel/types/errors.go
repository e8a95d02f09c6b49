// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrPaymentMismatch   = errors.New("ErrPaymentMismatch")
	ErrGameNotFound      = errors.New("ErrGameNotFound")
	ErrGameAlreadyJoined = errors.New("ErrGameAlreadyJoined")
	ErrNoCompetitor      = errors.New("ErrNoCompetitor")
	ErrGameExists        = errors.New("ErrGameExists")
	ErrSelfJoin          = errors.New("ErrSelfJoin")
	ErrNoCombatant       = errors.New("ErrNoCombatant")
)
