// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
)

func TestTransactionReadsOwnWrites(t *testing.T) {
	setup(t)
	defer teardown()

	storage.Pool.Balances.Put([]byte("deleted"), []byte{0, 0, 0, 0, 0, 0, 0, 9})

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "new transaction")

	trx.PutN(storage.Pool.Balances, []byte("wallet"), 42)
	trx.Put(storage.Pool.ClientBounties, []byte("index"), []byte{})
	trx.Delete(storage.Pool.Balances, []byte("deleted"))

	n, ok := trx.GetN(storage.Pool.Balances, []byte("wallet"))
	assert.True(t, ok, "staged value visible")
	assert.Equal(t, uint64(42), n, "staged value")
	assert.True(t, trx.Has(storage.Pool.ClientBounties, []byte("index")), "empty value is present")
	assert.False(t, trx.Has(storage.Pool.Balances, []byte("deleted")), "staged delete")
	assert.Equal(t, 3, trx.Size(), "size")

	// nothing visible outside before commit
	_, ok = storage.Pool.Balances.GetN([]byte("wallet"))
	assert.False(t, ok, "not committed")
	assert.True(t, storage.Pool.Balances.Has([]byte("deleted")), "delete not committed")

	assert.Nil(t, trx.Commit(), "commit")

	n, ok = storage.Pool.Balances.GetN([]byte("wallet"))
	assert.True(t, ok, "committed")
	assert.Equal(t, uint64(42), n, "committed value")
	assert.True(t, storage.Pool.ClientBounties.Has([]byte("index")), "committed index")
	assert.False(t, storage.Pool.Balances.Has([]byte("deleted")), "committed delete")

	assert.Equal(t, fault.ErrTransactionInUse, trx.Commit(), "second commit")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "new transaction")

	trx.Put(storage.Pool.Bounties, []byte("b"), []byte("record"))
	trx.Abort()

	assert.Nil(t, storage.Pool.Bounties.Get([]byte("b")), "aborted write")
	assert.Equal(t, fault.ErrTransactionInUse, trx.Commit(), "commit after abort")
}

func TestIndependentTransactions(t *testing.T) {
	setup(t)
	defer teardown()

	first, _ := storage.NewDBTransaction()
	second, _ := storage.NewDBTransaction()

	first.Put(storage.Pool.Users, []byte("a"), []byte("one"))
	second.Put(storage.Pool.Users, []byte("b"), []byte("two"))

	assert.Nil(t, second.Get(storage.Pool.Users, []byte("a")), "other transaction's write")

	assert.Nil(t, second.Commit(), "commit second")
	first.Abort()

	assert.Nil(t, storage.Pool.Users.Get([]byte("a")), "aborted")
	assert.Equal(t, []byte("two"), storage.Pool.Users.Get([]byte("b")), "committed")
}
