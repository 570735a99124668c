// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limitedset - a fixed size set that forgets its oldest entries
package limitedset

import (
	"container/ring"
	"sync"
)

// LimitedSet - holds up to size items with an optional value each
type LimitedSet struct {
	sync.Mutex
	size int
	ring *ring.Ring
	hash map[string]*ring.Ring
}

type entry struct {
	key   string
	value string
}

// New - create a new limited set that holds up to n items
func New(n int) *LimitedSet {
	if n <= 0 {
		return nil
	}
	return &LimitedSet{
		size: n,
		ring: ring.New(n),
		hash: make(map[string]*ring.Ring),
	}
}

// Add - add an item to the set, refreshing it if already present
func (ls *LimitedSet) Add(item string) {
	ls.Put(item, "")
}

// Put - add an item with a value, refreshing it if already present
func (ls *LimitedSet) Put(item string, value string) {
	ls.Lock()
	defer ls.Unlock()

	if r, ok := ls.hash[item]; ok {
		r.Value = entry{key: item, value: value}
		switch r {
		case ls.ring.Prev():
		case ls.ring:
			// oldest of a full ring becomes newest
			ls.ring = ls.ring.Next()
		default:
			r = r.Prev().Unlink(1)
			ls.ring.Prev().Link(r)
		}
		return
	}
	if old, ok := ls.ring.Value.(entry); ok {
		delete(ls.hash, old.key)
	}
	ls.ring.Value = entry{key: item, value: value}
	ls.hash[item] = ls.ring
	ls.ring = ls.ring.Next()
}

// Exists - check to see if item is in the set
func (ls *LimitedSet) Exists(item string) bool {
	ls.Lock()
	defer ls.Unlock()
	_, ok := ls.hash[item]
	return ok
}

// Get - the value stored with item
func (ls *LimitedSet) Get(item string) (string, bool) {
	ls.Lock()
	defer ls.Unlock()
	r, ok := ls.hash[item]
	if !ok {
		return "", false
	}
	return r.Value.(entry).value, true
}

// Len - number of items currently held
func (ls *LimitedSet) Len() int {
	ls.Lock()
	defer ls.Unlock()
	return len(ls.hash)
}
