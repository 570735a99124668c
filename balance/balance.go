// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - spendable amounts held by wallets and records
//
// All amounts are unsigned base units and every change happens inside
// a storage transaction; arithmetic is checked so an instruction that
// would overflow or overdraw fails before anything is committed.
package balance

import (
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
)

// Get - current balance, zero if never funded
func Get(trx storage.Transaction, a address.Address) uint64 {
	value, _ := trx.GetN(storage.Pool.Balances, a[:])
	return value
}

// Committed - balance outside any transaction
func Committed(pool storage.Handle, a address.Address) uint64 {
	value, _ := pool.GetN(a[:])
	return value
}

func set(trx storage.Transaction, a address.Address, value uint64) {
	if 0 == value {
		trx.Delete(storage.Pool.Balances, a[:])
		return
	}
	trx.PutN(storage.Pool.Balances, a[:], value)
}

// Credit - add to a balance
func Credit(trx storage.Transaction, a address.Address, amount uint64) error {
	current := Get(trx, a)
	total := current + amount
	if total < current {
		return fault.ErrAmountOverflow
	}
	if 0 != amount {
		set(trx, a, total)
	}
	return nil
}

// Debit - subtract from a balance
func Debit(trx storage.Transaction, a address.Address, amount uint64) error {
	current := Get(trx, a)
	if current < amount {
		return fault.ErrInsufficientFunds
	}
	if 0 != amount {
		set(trx, a, current-amount)
	}
	return nil
}

// Transfer - move an amount between two addresses
func Transfer(trx storage.Transaction, from address.Address, to address.Address, amount uint64) error {
	if from == to {
		if Get(trx, from) < amount {
			return fault.ErrInsufficientFunds
		}
		return nil
	}
	if Get(trx, from) < amount {
		return fault.ErrInsufficientFunds
	}
	if current := Get(trx, to); current+amount < current {
		return fault.ErrAmountOverflow
	}
	if err := Debit(trx, from, amount); nil != err {
		return err
	}
	return Credit(trx, to, amount)
}

// Drain - move the whole balance of from into to, returning the amount moved
func Drain(trx storage.Transaction, from address.Address, to address.Address) (uint64, error) {
	amount := Get(trx, from)
	err := Transfer(trx, from, to, amount)
	if nil != err {
		return 0, err
	}
	return amount, nil
}
