// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/bitmark-inc/logger"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

const (
	runnerLoggerPrefix = "script"
	treeGlobal         = "tree"
)

// the operations shared by the balanced and the plain tree
type scriptTree interface {
	Insert(key avl.Item, value interface{}) bool
	Delete(key avl.Item) interface{}
	Find(key avl.Item) *avl.Node
	Lookup(key avl.Item) (interface{}, error)
	First() *avl.Node
	Count() int
	Height() int
	IsBalanced() bool
	CheckUp() bool
	CheckCounts() bool
	Stats() avl.Stats
	Clear()
	Fprint(w io.Writer, printData bool) int
}

// executes Lua scripts against a fresh tree on every run
type runner struct {
	log       *logger.L
	keyType   string
	plain     bool
	printData bool
	output    io.Writer
	observer  *rotationLogger
	tally     counter.Tally
}

func newRunner(conf *Configuration, output io.Writer) *runner {
	return &runner{
		log:       logger.New(runnerLoggerPrefix),
		keyType:   conf.KeyType,
		plain:     conf.Plain,
		printData: conf.PrintData,
		output:    output,
		observer:  newRotationLogger(logger.New(rotationLoggerPrefix)),
	}
}

func (r *runner) newTree() (scriptTree, bool) {
	if r.plain {
		return avl.NewBinary(), false
	}
	tree := avl.New()
	tree.SetObserver(r.observer)
	return tree, true
}

// run a script file once
func (r *runner) runFile(fileName string) error {

	tree, balanced := r.newTree()

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = script file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)
	L.SetGlobal(treeGlobal, r.bindings(L, tree, balanced))

	r.observer.rotations.Reset()

	err := L.DoFile(fileName)
	if nil == err && !consistent(tree, balanced) {
		err = fault.ErrTreeInconsistent
	}

	rotations := r.observer.rotations.Reset()
	r.tally.Record(rotations, err)

	if nil != err {
		r.log.Errorf("script: %q  error: %s", fileName, err)
		return err
	}

	stats := tree.Stats()
	r.log.Infof("script: %q  count: %d  height: %d  rotations: %d  created: %d  destroyed: %d",
		fileName,
		tree.Count(),
		tree.Height(),
		rotations,
		stats.Created,
		stats.Destroyed,
	)
	return nil
}

// parent links and subtree counts for both trees, balance factors
// only for the balanced one
func consistent(tree scriptTree, balanced bool) bool {
	if !tree.CheckUp() || !tree.CheckCounts() {
		return false
	}
	if !balanced {
		return true
	}
	t, ok := tree.(*avl.Tree)
	return ok && t.IsBalanced() && t.CheckBalance()
}

// build the global "tree" table
func (r *runner) bindings(L *lua.LState, tree scriptTree, balanced bool) *lua.LTable {

	functions := map[string]lua.LGFunction{
		"insert": func(L *lua.LState) int {
			key := r.checkKey(L, 1)
			value := L.CheckAny(2)
			L.Push(lua.LBool(tree.Insert(key, value)))
			return 1
		},
		"delete": func(L *lua.LState) int {
			key := r.checkKey(L, 1)
			L.Push(toValue(tree.Delete(key)))
			return 1
		},
		"lookup": func(L *lua.LState) int {
			key := r.checkKey(L, 1)
			value, err := tree.Lookup(key)
			if nil != err {
				L.RaiseError("%s: %v", err, key)
				return 0
			}
			L.Push(toValue(value))
			return 1
		},
		"find": func(L *lua.LState) int {
			key := r.checkKey(L, 1)
			L.Push(lua.LBool(nil != tree.Find(key)))
			return 1
		},
		"count": func(L *lua.LState) int {
			L.Push(lua.LNumber(tree.Count()))
			return 1
		},
		"height": func(L *lua.LState) int {
			L.Push(lua.LNumber(tree.Height()))
			return 1
		},
		"balanced": func(L *lua.LState) int {
			L.Push(lua.LBool(tree.IsBalanced()))
			return 1
		},
		"check": func(L *lua.LState) int {
			L.Push(lua.LBool(consistent(tree, balanced)))
			return 1
		},
		"print": func(L *lua.LState) int {
			tree.Fprint(r.output, r.printData)
			return 0
		},
		"keys": func(L *lua.LState) int {
			keys := L.NewTable()
			for p := tree.First(); nil != p; p = p.Next() {
				keys.Append(fromKey(p.Key()))
			}
			L.Push(keys)
			return 1
		},
		"clear": func(L *lua.LState) int {
			tree.Clear()
			return 0
		},
	}

	return L.SetFuncs(L.NewTable(), functions)
}

// fetch argument n as a key of the configured type
func (r *runner) checkKey(L *lua.LState, n int) avl.Item {
	key, err := toKey(r.keyType, L.CheckAny(n))
	if nil != err {
		L.ArgError(n, fmt.Sprintf("%s: expected %s", err, r.keyType))
		return nil
	}
	return key
}

func toKey(keyType string, lv lua.LValue) (avl.Item, error) {
	switch keyType {
	case keyTypeInteger:
		n, ok := lv.(lua.LNumber)
		if !ok || float64(n) != math.Trunc(float64(n)) {
			return nil, fault.ErrInvalidKeyType
		}
		return avl.IntKey(int64(n)), nil

	case keyTypeString:
		s, ok := lv.(lua.LString)
		if !ok {
			return nil, fault.ErrInvalidKeyType
		}
		return avl.StringKey(string(s)), nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

func fromKey(key avl.Item) lua.LValue {
	switch k := key.(type) {
	case avl.IntKey:
		return lua.LNumber(k)
	case avl.StringKey:
		return lua.LString(k)
	default:
		return lua.LString(fmt.Sprintf("%v", key))
	}
}

func toValue(value interface{}) lua.LValue {
	if lv, ok := value.(lua.LValue); ok {
		return lv
	}
	return lua.LNil
}
