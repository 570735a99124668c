// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - initial wallet balances for a new database
//
// there is no faucet instruction, so test and local chains are funded
// once from the configured allocations when the database is first
// opened; the live chain starts empty
package genesis

import (
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
)

// Allocation - one funded wallet
type Allocation struct {
	Address address.Address
	Amount  uint64
}

// key in the settings pool recording that genesis has run
var appliedKey = []byte("genesis")

// Digest - identifies a set of allocations independent of order
func Digest(allocations []Allocation) [32]byte {
	sorted := make([]Allocation, len(allocations))
	copy(sorted, allocations)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Address, sorted[j].Address
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return sorted[i].Amount < sorted[j].Amount
	})

	h := sha3.New256()
	buffer := make([]byte, 8)
	for _, item := range sorted {
		h.Write(item.Address[:])
		binary.BigEndian.PutUint64(buffer, item.Amount)
		h.Write(buffer)
	}
	digest := [32]byte{}
	copy(digest[:], h.Sum(nil))
	return digest
}

// Applied - true once allocations have been credited
func Applied() bool {
	return storage.Pool.Settings.Has(appliedKey)
}

// Apply - credit the allocations unless a previous start already did
//
// returns true if this call credited them
func Apply(chainName string, allocations []Allocation) (bool, error) {
	if Applied() {
		return false, nil
	}
	if 0 != len(allocations) && chain.Live == chainName {
		return false, fault.ErrGenesisNotAllowed
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return false, err
	}

	for _, item := range allocations {
		err := balance.Credit(trx, item.Address, item.Amount)
		if nil != err {
			trx.Abort()
			return false, err
		}
	}

	digest := Digest(allocations)
	trx.Put(storage.Pool.Settings, appliedKey, digest[:])

	err = trx.Commit()
	if nil != err {
		return false, err
	}
	return true, nil
}
