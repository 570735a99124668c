// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters for statistics and
// connection slots
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter, the zero value is ready to use
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return c.value.Add(^uint64(0))
}

// Add - add n to a counter, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return c.value.Add(n)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}

// Reset - back to zero
func (c *Counter) Reset() {
	c.value.Store(0)
}

// Acquire - take one slot if fewer than maximum are in use
//
// a successful Acquire must be paired with Release
func (c *Counter) Acquire(maximum uint64) bool {
	for {
		n := c.value.Load()
		if n >= maximum {
			return false
		}
		if c.value.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release - return a slot taken by Acquire
func (c *Counter) Release() {
	c.Decrement()
}
