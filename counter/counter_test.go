// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/bountyd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()
	c1.Decrement()
	c1.Decrement()
	c1.Decrement()

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

func TestCounterAdd(t *testing.T) {

	var c counter.Counter

	if 5000000000 != c.Add(5000000000) {
		t.Errorf("add returned: %d", c.Uint64())
	}
	c.Increment()
	if 5000000001 != c.Uint64() {
		t.Errorf("counter after add: %d", c.Uint64())
	}
}

func TestCounterAcquire(t *testing.T) {

	var c counter.Counter

	for i := 0; i < 3; i += 1 {
		if !c.Acquire(3) {
			t.Fatalf("acquire: %d failed", i)
		}
	}
	if c.Acquire(3) {
		t.Errorf("acquired beyond maximum: %d", c.Uint64())
	}

	c.Release()
	if !c.Acquire(3) {
		t.Errorf("slot not returned by release: %d", c.Uint64())
	}
	if 3 != c.Uint64() {
		t.Errorf("counter after acquire: %d", c.Uint64())
	}
}

func TestCounterAcquireConcurrent(t *testing.T) {

	var c counter.Counter
	var taken counter.Counter

	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(10) {
				taken.Increment()
			}
		}()
	}
	wg.Wait()

	if 10 != taken.Uint64() {
		t.Errorf("slots taken: %d  expected: 10", taken.Uint64())
	}
}
