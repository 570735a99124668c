// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// Ledger - interface to the running ledger
type Ledger interface {
	Submit(transactionrecord.Packed) (*Result, error)
	Status(transactionrecord.TxId) (*TransactionStatus, error)
	ReadCounters() Counters
	Chain() string
}

type ledgerHandle struct{}

// Get - the ledger instance
func Get() Ledger {
	return ledgerHandle{}
}

func (ledgerHandle) Submit(packed transactionrecord.Packed) (*Result, error) {
	return Submit(packed)
}

func (ledgerHandle) Status(txId transactionrecord.TxId) (*TransactionStatus, error) {
	return Status(txId)
}

func (ledgerHandle) ReadCounters() Counters {
	return ReadCounters()
}

func (ledgerHandle) Chain() string {
	return Chain()
}
