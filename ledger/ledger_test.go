// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const title = "Ledger runtime"

func TestNotInitialised(t *testing.T) {
	_, err := ledger.Submit(transactionrecord.Packed{0x01})
	assert.Equal(t, fault.ErrNotInitialised, err, "submit")

	_, err = ledger.Status(transactionrecord.TxId{})
	assert.Equal(t, fault.ErrNotInitialised, err, "status")

	assert.Equal(t, fault.ErrNotInitialised, ledger.Finalise(), "finalise")
}

func TestSettings(t *testing.T) {
	setupStorage(t)
	defer teardownStorage()

	configuration := ledger.Configuration{
		Chain:   chain.Local,
		Deriver: deriver,
		Clock:   now,
	}
	assert.Nil(t, ledger.Initialise(configuration), "first start")
	assert.Equal(t, fault.ErrAlreadyInitialised, ledger.Initialise(configuration), "second initialise")
	assert.Nil(t, ledger.Finalise(), "finalise")

	assert.Nil(t, ledger.Initialise(configuration), "restart")
	assert.Nil(t, ledger.Finalise(), "finalise")

	configuration.Chain = chain.Testing
	assert.Equal(t, fault.ErrSettingsMismatch, ledger.Initialise(configuration), "other chain")

	configuration.Chain = chain.Local
	configuration.Deriver = address.NewDeriver(address.BLAKE3, deriver.Program())
	assert.Equal(t, fault.ErrSettingsMismatch, ledger.Initialise(configuration), "other hash")

	configuration.Chain = "nowhere"
	assert.Equal(t, fault.ErrInvalidChain, ledger.Initialise(configuration), "bad chain")
}

func TestSubmitEndToEnd(t *testing.T) {
	setup(t)
	defer teardown()

	reward := 2 * sol
	bounty := derive(deriver.Bounty(title, creator))
	escrow := derive(deriver.Escrow(bounty))
	creatorBefore := committed(creator)
	workerBefore := committed(worker)

	_, err := submit(t, creatorKey, newClient())
	assert.Nil(t, err, "create client")
	_, err = submit(t, workerKey, newUser("Jane Roe"))
	assert.Nil(t, err, "create user")

	result, err := submit(t, creatorKey, newBounty(title, reward))
	assert.Nil(t, err, "create bounty")
	assert.Equal(t, "CreateBounty", result.Instruction, "instruction name")
	assert.Equal(t, uint64(startTime), result.Timestamp, "timestamp from clock")
	assert.Equal(t, reward, committed(escrow), "escrowed")

	_, err = submit(t, workerKey, newSubmission(title))
	assert.Nil(t, err, "create submission")

	result, err = submit(t, creatorKey, selectWinner(title, worker))
	assert.Nil(t, err, "select submission")

	assert.Equal(t, uint64(0), committed(escrow), "escrow drained")
	assert.False(t, storage.Pool.Escrows.Has(escrow[:]), "escrow closed")

	clientRent := accountrecord.RentDeposit(accountrecord.ClientTag)
	bountyRent := accountrecord.RentDeposit(accountrecord.BountyTag)
	userRent := accountrecord.RentDeposit(accountrecord.UserTag)
	submissionRent := accountrecord.RentDeposit(accountrecord.SubmissionTag)

	assert.Equal(t, creatorBefore-clientRent-bountyRent-reward, committed(creator), "creator paid reward and rent")
	assert.Equal(t, workerBefore-userRent-submissionRent+reward, committed(worker), "worker received reward")

	status, err := ledger.Status(result.TxId)
	assert.Nil(t, err, "status")
	assert.Equal(t, ledger.TrackingCommitted, status.Status, "committed")
	assert.Equal(t, "SelectSubmission", status.Instruction, "instruction")
	assert.Equal(t, uint64(startTime), status.Timestamp, "timestamp")
	assert.Equal(t, result.TxId, status.Packed.MakeTxId(), "stored bytes hash to the id")

	counters := ledger.ReadCounters()
	assert.Equal(t, uint64(5), counters.Accepted, "accepted")
	assert.Equal(t, uint64(0), counters.Rejected, "rejected")
	assert.Equal(t, 0, counters.InProgress, "in progress")
	assert.Equal(t, 0, counters.LockedAccounts, "locks released")

	waitForCount(t, "CreateClient", 1)
	waitForCount(t, "SelectSubmission", 1)
}

func TestReplay(t *testing.T) {
	setup(t)
	defer teardown()

	packed := sign(t, creatorKey, newClient())
	_, err := ledger.Submit(packed)
	assert.Nil(t, err, "first")

	_, err = ledger.Submit(packed)
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "replay")
	assert.True(t, fault.IsErrConflict(err), "conflict kind")
}

func TestRejectedStatus(t *testing.T) {
	setup(t)
	defer teardown()

	before := committed(creator)

	// no client record yet
	packed := sign(t, creatorKey, newBounty(title, sol))
	_, err := ledger.Submit(packed)
	assert.Equal(t, fault.ErrClientNotFound, err, "bounty without client")
	assert.Equal(t, before, committed(creator), "no funds moved")

	status, err := ledger.Status(packed.MakeTxId())
	assert.Nil(t, err, "status")
	assert.Equal(t, ledger.TrackingRejected, status.Status, "rejected")
	assert.Equal(t, fault.ErrClientNotFound.Error(), status.Error, "reason")

	status, err = ledger.Status(transactionrecord.TxId{0x99})
	assert.Nil(t, err, "unknown status")
	assert.Equal(t, ledger.TrackingNotFound, status.Status, "not found")

	assert.Equal(t, uint64(1), ledger.ReadCounters().Rejected, "rejected count")
}

func TestMalformed(t *testing.T) {
	setup(t)
	defer teardown()

	packed := sign(t, creatorKey, newClient())

	trailing := append(append(transactionrecord.Packed{}, packed...), 0x00)
	_, err := ledger.Submit(trailing)
	assert.Equal(t, fault.ErrNotInstructionPack, err, "trailing bytes")

	tampered := append(transactionrecord.Packed{}, packed...)
	tampered[len(tampered)-1] ^= 0xff
	_, err = ledger.Submit(tampered)
	assert.Equal(t, fault.ErrInvalidSignature, err, "tampered signature")

	_, err = ledger.Submit(packed[:len(packed)/2])
	assert.NotNil(t, err, "truncated")

	assert.False(t, storage.Pool.Clients.Has(derive(deriver.Client(creator)).Bytes()), "nothing created")
}

func TestWrongNetwork(t *testing.T) {
	setupStorage(t)
	defer teardown()

	err := ledger.Initialise(ledger.Configuration{
		Chain:   chain.Live,
		Deriver: deriver,
		Clock:   now,
	})
	assert.Nil(t, err, "live ledger")

	_, err = ledger.Submit(sign(t, creatorKey, newClient()))
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "test key on live chain")
}

func TestConcurrentSelection(t *testing.T) {
	setup(t)
	defer teardown()

	reward := 3 * sol
	bounty := derive(deriver.Bounty(title, creator))
	escrow := derive(deriver.Escrow(bounty))

	_, err := submit(t, creatorKey, newClient())
	assert.Nil(t, err, "create client")
	for _, key := range []*account.PrivateKey{workerKey, otherKey} {
		_, err = submit(t, key, newUser("Sam Smith"))
		assert.Nil(t, err, "create user")
	}
	_, err = submit(t, creatorKey, newBounty(title, reward))
	assert.Nil(t, err, "create bounty")
	_, err = submit(t, workerKey, newSubmission(title))
	assert.Nil(t, err, "worker submission")
	_, err = submit(t, otherKey, newSubmission(title))
	assert.Nil(t, err, "other submission")

	workerBefore := committed(worker)
	otherBefore := committed(other)

	selections := []transactionrecord.Packed{
		sign(t, creatorKey, selectWinner(title, worker)),
		sign(t, creatorKey, selectWinner(title, other)),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(selections))
	for i, packed := range selections {
		wg.Add(1)
		go func(i int, packed transactionrecord.Packed) {
			defer wg.Done()
			_, errs[i] = ledger.Submit(packed)
		}(i, packed)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if nil == err {
			successes += 1
			continue
		}
		if fault.ErrAccountInUse != err && fault.ErrBountyAlreadyRewarded != err {
			t.Errorf("unexpected error: %s", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one winner")

	paid := committed(worker) - workerBefore + committed(other) - otherBefore
	assert.Equal(t, reward, paid, "reward paid once")
	assert.Equal(t, uint64(0), committed(escrow), "escrow empty")
}
