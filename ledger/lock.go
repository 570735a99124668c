// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
)

// accounts held by submissions currently executing
type lockSet struct {
	sync.Mutex
	accounts map[address.Address]struct{}
	holders  int
}

// take every account or none
func (l *lockSet) acquire(accounts []address.Address) error {
	l.Lock()
	defer l.Unlock()

	for _, a := range accounts {
		if _, ok := l.accounts[a]; ok {
			return fault.ErrAccountInUse
		}
	}
	for _, a := range accounts {
		l.accounts[a] = struct{}{}
	}
	l.holders += 1
	return nil
}

func (l *lockSet) release(accounts []address.Address) {
	l.Lock()
	defer l.Unlock()

	for _, a := range accounts {
		delete(l.accounts, a)
	}
	l.holders -= 1
}

// number of holders and locked accounts
func (l *lockSet) size() (int, int) {
	l.Lock()
	defer l.Unlock()
	return l.holders, len(l.accounts)
}

// order preserving removal of repeated accounts
func unique(accounts []address.Address) []address.Address {
	seen := make(map[address.Address]struct{}, len(accounts))
	result := make([]address.Address, 0, len(accounts))
	for _, a := range accounts {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		result = append(result, a)
	}
	return result
}
