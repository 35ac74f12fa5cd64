// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// IntKey - signed integer key
type IntKey int64

// Compare - integer comparison for AVL interface
func (k IntKey) Compare(x interface{}) int {
	v := x.(IntKey)
	switch {
	case k < v:
		return -1
	case k > v:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (k IntKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// StringKey - key ordered by byte-wise string comparison
type StringKey string

// Compare - string comparison for AVL interface
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

// String - the key itself
func (k StringKey) String() string {
	return string(k)
}
