// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func testRunner(keyType string, plain bool, printData bool) (*runner, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	conf := &Configuration{
		KeyType:   keyType,
		Plain:     plain,
		PrintData: printData,
	}
	return newRunner(conf, buffer), buffer
}

const integerScript = `
for i = 1, 100 do
    assert(tree.insert(i, i * 2))
end
assert(not tree.insert(7, "seven"), "duplicate reported as added")
assert(tree.lookup(7) == "seven", "value not replaced")

assert(tree.count() == 100)
assert(tree.balanced())
assert(tree.height() <= 9)
assert(tree.check())

assert(tree.delete(50) == 100)
assert(tree.delete(50) == nil)
assert(not tree.find(50))
assert(tree.find(51))

local ok, err = pcall(tree.lookup, 50)
assert(not ok, "lookup of a deleted key succeeded")
assert(string.find(err, "key not found"), err)

local keys = tree.keys()
assert(#keys == 99)
assert(keys[1] == 1 and keys[49] == 49 and keys[50] == 51 and keys[99] == 100)

tree.clear()
assert(tree.count() == 0)
assert(#tree.keys() == 0)
`

func TestScriptInteger(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "integer.lua", integerScript)
	defer cleanup()

	r, _ := testRunner(keyTypeInteger, false, false)
	err := r.runFile(fileName)
	require.Nil(t, err, "script error")

	assert.Equal(t, uint64(1), r.tally.Runs.Uint64(), "runs")
	assert.True(t, r.tally.Failures.IsZero(), "failures")
	assert.False(t, r.tally.Rotations.IsZero(), "sequential inserts must rotate")
}

const stringScript = `
local words = { "pear", "apple", "fig", "banana", "cherry" }
for _, w in ipairs(words) do
    tree.insert(w, #w)
end
local keys = tree.keys()
assert(keys[1] == "apple" and keys[5] == "pear", table.concat(keys, ","))
assert(tree.lookup("banana") == 6)

local ok = pcall(tree.insert, 42, "number")
assert(not ok, "integer key accepted by a string tree")

tree.print()
`

func TestScriptString(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "string.lua", stringScript)
	defer cleanup()

	r, buffer := testRunner(keyTypeString, false, true)
	err := r.runFile(fileName)
	require.Nil(t, err, "script error")

	output := buffer.String()
	for _, w := range []string{"apple", "banana", "cherry", "fig", "pear"} {
		assert.Contains(t, output, w, "printed tree")
	}
}

const plainScript = `
for i = 1, 10 do
    tree.insert(i, true)
end
assert(tree.height() == 10, "plain tree is not a chain")
assert(not tree.balanced())
assert(tree.check())
`

func TestScriptPlain(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "plain.lua", plainScript)
	defer cleanup()

	r, _ := testRunner(keyTypeInteger, true, false)
	err := r.runFile(fileName)
	require.Nil(t, err, "script error")
	assert.True(t, r.tally.Rotations.IsZero(), "plain tree rotated")
}

func TestScriptRotations(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "rotate.lua", "tree.insert(10, 1)\ntree.insert(20, 2)\ntree.insert(30, 3)\n")
	defer cleanup()

	r, _ := testRunner(keyTypeInteger, false, false)
	require.Nil(t, r.runFile(fileName), "first run")
	assert.Equal(t, uint64(1), r.tally.Rotations.Uint64(), "single left rotation")

	require.Nil(t, r.runFile(fileName), "second run")
	assert.Equal(t, uint64(2), r.tally.Rotations.Uint64(), "each run uses a fresh tree")
	assert.Equal(t, uint64(2), r.tally.Runs.Uint64(), "runs")
}

func TestScriptFailure(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "fail.lua", "tree.insert(1.5, 1)\n")
	defer cleanup()

	r, _ := testRunner(keyTypeInteger, false, false)
	err := r.runFile(fileName)
	assert.NotNil(t, err, "fractional key accepted")
	assert.Equal(t, uint64(1), r.tally.Failures.Uint64(), "failures")

	err = r.runFile(fileName + ".missing")
	assert.NotNil(t, err, "missing script ran")
	assert.Equal(t, uint64(2), r.tally.Failures.Uint64(), "failures")
}

func TestKeyConversion(t *testing.T) {
	key, err := toKey(keyTypeInteger, lua.LNumber(12))
	assert.Nil(t, err, "integer key")
	assert.Equal(t, avl.IntKey(12), key, "integer key")

	_, err = toKey(keyTypeInteger, lua.LString("12"))
	assert.Equal(t, fault.ErrInvalidKeyType, err, "string as integer")

	_, err = toKey(keyTypeInteger, lua.LNumber(0.5))
	assert.Equal(t, fault.ErrInvalidKeyType, err, "fraction as integer")

	key, err = toKey(keyTypeString, lua.LString("x"))
	assert.Nil(t, err, "string key")
	assert.Equal(t, avl.StringKey("x"), key, "string key")

	_, err = toKey(keyTypeString, lua.LTrue)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "boolean as string")

	_, err = toKey("float", lua.LNumber(1))
	assert.Equal(t, fault.ErrInvalidKeyType, err, "unknown key type")

	assert.Equal(t, lua.LNumber(-3), fromKey(avl.IntKey(-3)), "integer back")
	assert.Equal(t, lua.LString("y"), fromKey(avl.StringKey("y")), "string back")
	assert.Equal(t, lua.LNil, toValue(nil), "missing value")
}

func TestConsistent(t *testing.T) {
	tree := avl.New()
	for i := 0; i < 64; i += 1 {
		tree.Insert(avl.IntKey(i), i)
	}
	assert.True(t, consistent(tree, true), "balanced tree")

	plain := avl.NewBinary()
	for i := 0; i < 64; i += 1 {
		plain.Insert(avl.IntKey(i), i)
	}
	assert.True(t, consistent(plain, false), "plain tree")
	assert.False(t, consistent(plain, true), "plain tree is not an AVL tree")
}
