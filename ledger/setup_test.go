// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/program"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const (
	testingDirName = "testing"

	startTime = int64(1700000000)
	oneDay    = uint64(86400)

	sol = uint64(1000000000)
)

var (
	deriver *address.Deriver

	creatorKey, _ = account.PrivateKeyFromSeed(bytes.Repeat([]byte{0x51}, 32), true)
	workerKey, _  = account.PrivateKeyFromSeed(bytes.Repeat([]byte{0x52}, 32), true)
	otherKey, _   = account.PrivateKeyFromSeed(bytes.Repeat([]byte{0x53}, 32), true)

	creator = creatorKey.Account().Address()
	worker  = workerKey.Account().Address()
	other   = otherKey.Account().Address()
)

// adjustable ledger time
var clock = struct {
	sync.Mutex
	now time.Time
}{}

func now() time.Time {
	clock.Lock()
	defer clock.Unlock()
	return clock.now
}

func init() {
	programId, err := address.FromBase58(address.DefaultProgramID)
	if nil != err {
		panic(err)
	}
	deriver = address.NewDeriver(address.SHA256, programId)
}

// open storage only
func setupStorage(t *testing.T) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(filepath.Join(testingDirName, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	clock.Lock()
	clock.now = time.Unix(startTime, 0)
	clock.Unlock()
}

// storage plus a running local ledger with funded wallets
func setup(t *testing.T) {
	setupStorage(t)

	err := ledger.Initialise(ledger.Configuration{
		Chain:   chain.Local,
		Deriver: deriver,
		Clock:   now,
	})
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}

	fund(t, creator, 100*sol)
	fund(t, worker, 10*sol)
	fund(t, other, 10*sol)
}

func teardown() {
	_ = ledger.Finalise()
	teardownStorage()
}

func teardownStorage() {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func fund(t *testing.T, a address.Address, amount uint64) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	if err := balance.Credit(trx, a, amount); nil != err {
		t.Fatalf("credit error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

var nonce uint64

// fill in the account list and sign
func sign(t *testing.T, key *account.PrivateKey, instruction transactionrecord.Instruction) transactionrecord.Packed {
	accounts, err := program.AccountList(deriver, key.Account().Address(), instruction)
	if nil != err {
		t.Fatalf("account list error: %s", err)
	}
	instruction.GetHeader().Accounts = accounts

	nonce += 1
	packed, err := transactionrecord.Sign(instruction, key, nonce)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return packed
}

func submit(t *testing.T, key *account.PrivateKey, instruction transactionrecord.Instruction) (*ledger.Result, error) {
	return ledger.Submit(sign(t, key, instruction))
}

func committed(a address.Address) uint64 {
	return balance.Committed(storage.Pool.Balances, a)
}

func derive(a address.Address, _ uint8, err error) address.Address {
	if nil != err {
		panic(err)
	}
	return a
}

func newClient() *transactionrecord.CreateClient {
	return &transactionrecord.CreateClient{
		CompanyName:  "Acme Works",
		CompanyEmail: "jobs@acme.test",
		CompanyLink:  "https://acme.test",
	}
}

func newUser(name string) *transactionrecord.CreateUser {
	return &transactionrecord.CreateUser{
		Name:   name,
		Email:  "someone@example.test",
		Skills: []string{"go"},
	}
}

func newBounty(title string, reward uint64) *transactionrecord.CreateBounty {
	return &transactionrecord.CreateBounty{
		Title:       title,
		Description: "write the ledger",
		Reward:      reward,
		Deadline:    uint64(startTime) + 7*oneDay,
	}
}

func newSubmission(title string) *transactionrecord.CreateSubmission {
	return &transactionrecord.CreateSubmission{
		Creator:     creator,
		Title:       title,
		Description: "done",
		WorkUrl:     "https://work.test/ledger",
	}
}

func selectWinner(title string, winner address.Address) *transactionrecord.SelectSubmission {
	return &transactionrecord.SelectSubmission{
		Title:  title,
		Winner: winner,
	}
}

// wait for the background event tally to reach n for an instruction
func waitForCount(t *testing.T, name string, n uint64) {
	for i := 0; i < 100; i += 1 {
		if ledger.ReadCounters().Instructions[name] >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("%s count did not reach: %d  actual: %d", name, n, ledger.ReadCounters().Instructions[name])
}
