// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/storage/mocks"
)

var (
	alice = address.Address{0x01}
	bob   = address.Address{0x02}
)

func TestCreditDebit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	gomock.InOrder(
		trx.EXPECT().GetN(storage.Pool.Balances, alice[:]).Return(uint64(10), true),
		trx.EXPECT().PutN(storage.Pool.Balances, alice[:], uint64(15)),
		trx.EXPECT().GetN(storage.Pool.Balances, alice[:]).Return(uint64(15), true),
		trx.EXPECT().Delete(storage.Pool.Balances, alice[:]),
	)

	assert.Nil(t, balance.Credit(trx, alice, 5), "credit")
	assert.Nil(t, balance.Debit(trx, alice, 15), "debit to zero")
}

func TestOverflowAndOverdraw(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	trx.EXPECT().GetN(storage.Pool.Balances, alice[:]).Return(uint64(math.MaxUint64), true)
	trx.EXPECT().GetN(storage.Pool.Balances, bob[:]).Return(uint64(3), true)

	assert.Equal(t, fault.ErrAmountOverflow, balance.Credit(trx, alice, 1), "overflow")
	assert.Equal(t, fault.ErrInsufficientFunds, balance.Debit(trx, bob, 4), "overdraw")
}

func TestTransfer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	balances := map[address.Address]uint64{alice: 100, bob: 1}

	trx.EXPECT().GetN(storage.Pool.Balances, gomock.Any()).DoAndReturn(
		func(_ *storage.PoolHandle, key []byte) (uint64, bool) {
			a, _ := address.FromBytes(key)
			v, ok := balances[a]
			return v, ok
		}).AnyTimes()
	trx.EXPECT().PutN(storage.Pool.Balances, gomock.Any(), gomock.Any()).Do(
		func(_ *storage.PoolHandle, key []byte, value uint64) {
			a, _ := address.FromBytes(key)
			balances[a] = value
		}).AnyTimes()
	trx.EXPECT().Delete(storage.Pool.Balances, gomock.Any()).Do(
		func(_ *storage.PoolHandle, key []byte) {
			a, _ := address.FromBytes(key)
			delete(balances, a)
		}).AnyTimes()

	assert.Nil(t, balance.Transfer(trx, alice, bob, 40), "transfer")
	assert.Equal(t, uint64(60), balances[alice], "alice after transfer")
	assert.Equal(t, uint64(41), balances[bob], "bob after transfer")

	assert.Equal(t, fault.ErrInsufficientFunds, balance.Transfer(trx, bob, alice, 42), "overdraw")
	assert.Equal(t, uint64(41), balances[bob], "bob unchanged")

	moved, err := balance.Drain(trx, alice, bob)
	assert.Nil(t, err, "drain")
	assert.Equal(t, uint64(60), moved, "drained amount")
	_, present := balances[alice]
	assert.False(t, present, "drained balance removed")
	assert.Equal(t, uint64(101), balances[bob], "conserved")
}
