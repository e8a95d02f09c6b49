// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"strconv"
)

func sprintf(format string, v ...interface{}) string {
	return fmt.Sprintf(format, v...)
}

func itoa64(i int64) string {
	return strconv.FormatInt(i, 10)
}
