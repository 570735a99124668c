// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/program"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const (
	testingDirName = "testing"

	startTime = uint64(1700000000)
	oneDay    = uint64(86400)

	sol = uint64(1000000000)
)

var (
	deriver *address.Deriver

	creatorKey, _ = account.PrivateKeyFromSeed(bytes.Repeat([]byte{0x41}, 32), true)
	workerKey, _  = account.PrivateKeyFromSeed(bytes.Repeat([]byte{0x42}, 32), true)
	otherKey, _   = account.PrivateKeyFromSeed(bytes.Repeat([]byte{0x43}, 32), true)

	creator = creatorKey.Account().Address()
	worker  = workerKey.Account().Address()
	other   = otherKey.Account().Address()

	now   = startTime
	nonce = uint64(0)
)

func init() {
	programId, err := address.FromBase58(address.DefaultProgramID)
	if nil != err {
		panic(err)
	}
	deriver = address.NewDeriver(address.SHA256, programId)
}

// configure for testing
func setup(t *testing.T) {
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

	now = startTime
	fund(t, creator, 100*sol)
	fund(t, worker, 10*sol)
	fund(t, other, 10*sol)
}

// post test cleanup
func teardown() {
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

// sign with the expected account list and execute in its own
// transaction, committing only on success
func run(key *account.PrivateKey, instruction transactionrecord.Instruction) error {
	accounts, err := program.AccountList(deriver, key.Account().Address(), instruction)
	if nil != err {
		return err
	}
	instruction.GetHeader().Accounts = accounts
	return runAs(key, instruction)
}

// as run but with the account list already set
func runAs(key *account.PrivateKey, instruction transactionrecord.Instruction) error {
	nonce += 1
	_, err := transactionrecord.Sign(instruction, key, nonce)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = program.Execute(trx, deriver, instruction, now)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func committed(a address.Address) uint64 {
	return balance.Committed(storage.Pool.Balances, a)
}

func rent(tag accountrecord.TagType) uint64 {
	return accountrecord.RentDeposit(tag)
}

func derive(a address.Address, _ uint8, err error) address.Address {
	if nil != err {
		panic(err)
	}
	return a
}

func clientAddress(authority address.Address) address.Address {
	return derive(deriver.Client(authority))
}

func userAddress(authority address.Address) address.Address {
	return derive(deriver.User(authority))
}

func bountyAddress(title string, creator address.Address) address.Address {
	return derive(deriver.Bounty(title, creator))
}

func submissionAddress(submitter address.Address, bounty address.Address) address.Address {
	return derive(deriver.Submission(submitter, bounty))
}

func escrowAddress(bounty address.Address) address.Address {
	return derive(deriver.Escrow(bounty))
}

func readClient(t *testing.T, a address.Address) *accountrecord.Client {
	packed := storage.Pool.Clients.Get(a[:])
	if nil == packed {
		t.Fatalf("no client at: %s", a)
	}
	record, err := accountrecord.Packed(packed).UnpackClient()
	if nil != err {
		t.Fatalf("unpack client error: %s", err)
	}
	return record
}

func readUser(t *testing.T, a address.Address) *accountrecord.User {
	packed := storage.Pool.Users.Get(a[:])
	if nil == packed {
		t.Fatalf("no user at: %s", a)
	}
	record, err := accountrecord.Packed(packed).UnpackUser()
	if nil != err {
		t.Fatalf("unpack user error: %s", err)
	}
	return record
}

func readBounty(t *testing.T, a address.Address) *accountrecord.Bounty {
	packed := storage.Pool.Bounties.Get(a[:])
	if nil == packed {
		t.Fatalf("no bounty at: %s", a)
	}
	record, err := accountrecord.Packed(packed).UnpackBounty()
	if nil != err {
		t.Fatalf("unpack bounty error: %s", err)
	}
	return record
}

func readSubmission(t *testing.T, a address.Address) *accountrecord.Submission {
	packed := storage.Pool.Submissions.Get(a[:])
	if nil == packed {
		t.Fatalf("no submission at: %s", a)
	}
	record, err := accountrecord.Packed(packed).UnpackSubmission()
	if nil != err {
		t.Fatalf("unpack submission error: %s", err)
	}
	return record
}

// common instructions

func newClient() *transactionrecord.CreateClient {
	return &transactionrecord.CreateClient{
		CompanyName:  "Acme Works",
		CompanyEmail: "jobs@acme.test",
		CompanyLink:  "https://acme.test",
	}
}

func newUser(name string, skills []string) *transactionrecord.CreateUser {
	return &transactionrecord.CreateUser{
		Name:   name,
		Email:  "someone@example.test",
		Skills: skills,
	}
}

func newBounty(title string, reward uint64) *transactionrecord.CreateBounty {
	return &transactionrecord.CreateBounty{
		Title:          title,
		Description:    "span the river",
		Reward:         reward,
		Deadline:       now + 7*oneDay,
		RequiredSkills: []string{"steel"},
	}
}

func newSubmission(title string, url string) *transactionrecord.CreateSubmission {
	return &transactionrecord.CreateSubmission{
		Creator:     creator,
		Title:       title,
		Description: "finished",
		WorkUrl:     url,
	}
}

func selectWinner(title string, winner address.Address) *transactionrecord.SelectSubmission {
	return &transactionrecord.SelectSubmission{
		Title:  title,
		Winner: winner,
	}
}

// client with one bounty and a user ready to submit
func setupBounty(t *testing.T, title string, reward uint64) {
	if err := run(creatorKey, newClient()); nil != err {
		t.Fatalf("create client error: %s", err)
	}
	if err := run(workerKey, newUser("John Doe", []string{"welding"})); nil != err {
		t.Fatalf("create user error: %s", err)
	}
	if err := run(creatorKey, newBounty(title, reward)); nil != err {
		t.Fatalf("create bounty error: %s", err)
	}
}
