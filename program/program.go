// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// state shared by the handlers of one instruction
type environment struct {
	trx     storage.Transaction
	deriver *address.Deriver
	now     uint64
	signer  address.Address
}

// Execute - apply a single instruction
//
// the instruction's signature must already have been checked; now is
// the ledger time in Unix seconds
func Execute(trx storage.Transaction, deriver *address.Deriver, instruction transactionrecord.Instruction, now uint64) error {
	if nil == trx || nil == deriver || nil == instruction {
		return fault.ErrMissingParameters
	}
	header := instruction.GetHeader()
	if nil == header.Signer {
		return fault.ErrNotPublicKey
	}

	env := &environment{
		trx:     trx,
		deriver: deriver,
		now:     now,
		signer:  header.Signer.Address(),
	}

	switch tx := instruction.(type) {

	case *transactionrecord.CreateClient:
		return env.createClient(tx)

	case *transactionrecord.UpdateClient:
		return env.updateClient(tx)

	case *transactionrecord.DeleteClient:
		return env.deleteClient(tx)

	case *transactionrecord.CreateUser:
		return env.createUser(tx)

	case *transactionrecord.UpdateUser:
		return env.updateUser(tx)

	case *transactionrecord.DeleteUser:
		return env.deleteUser(tx)

	case *transactionrecord.CreateBounty:
		return env.createBounty(tx)

	case *transactionrecord.UpdateBounty:
		return env.updateBounty(tx)

	case *transactionrecord.DeleteBounty:
		return env.deleteBounty(tx)

	case *transactionrecord.CreateSubmission:
		return env.createSubmission(tx)

	case *transactionrecord.SelectSubmission:
		return env.selectSubmission(tx)

	default:
		return fault.ErrUnknownInstruction
	}
}

// checked counter update
func increment(counter *uint64, amount uint64) error {
	n := *counter + amount
	if n < *counter {
		return fault.ErrCounterOverflow
	}
	*counter = n
	return nil
}
