// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/ledger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory use next to the ledger counters
func memstats(shutdown <-chan struct{}) {

	log := logger.New("memory")

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, s, runtime.NumGoroutine())

		c := ledger.ReadCounters()
		log.Infof("accepted: %d  rejected: %d  in progress: %d  locked accounts: %d", c.Accepted, c.Rejected, c.InProgress, c.LockedAccounts)

		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
	}
}
