// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/messagebus"
	"github.com/bitmark-inc/bountyd/program"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// Result - a committed instruction
type Result struct {
	TxId        transactionrecord.TxId `json:"txId"`
	Instruction string                 `json:"instruction"`
	Accounts    []address.Address      `json:"accounts"`
	Timestamp   uint64                 `json:"timestamp,string"`
}

// Submit - verify, execute and commit one signed instruction
//
// returns only after the instruction is committed or rejected; a
// rejected instruction leaves storage unchanged
func Submit(packed transactionrecord.Packed) (*Result, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}
	log := globalData.log

	instruction, n, err := packed.Unpack(globalData.testnet)
	if nil != err {
		globalData.refused.Increment()
		return nil, err
	}
	if n != len(packed) {
		globalData.refused.Increment()
		return nil, fault.ErrNotInstructionPack
	}

	// re-packing verifies the signature and that the encoding is canonical
	header := instruction.GetHeader()
	repacked, err := instruction.Pack(header.Signer)
	if nil != err {
		globalData.refused.Increment()
		return nil, err
	}
	if !bytes.Equal(repacked, packed) {
		globalData.refused.Increment()
		return nil, fault.ErrNotInstructionPack
	}

	txId := packed.MakeTxId()
	name := instruction.Tag().String()
	accounts := unique(header.Accounts)

	err = globalData.locks.acquire(accounts)
	if nil != err {
		globalData.refused.Increment()
		log.Debugf("%s: %s  id: %s", name, err, txId)
		return nil, err
	}
	defer globalData.locks.release(accounts)

	if storage.Pool.Transactions.Has(txId[:]) {
		globalData.refused.Increment()
		return nil, fault.ErrTransactionAlreadyExists
	}

	now := uint64(globalData.clock().Unix())

	err = commit(instruction, packed, txId, now)
	if nil != err {
		globalData.refused.Increment()
		globalData.rejected.Put(txId.String(), err.Error())
		log.Infof("rejected: %s  id: %s  error: %s", name, txId, err)
		return nil, err
	}
	globalData.accepted.Increment()

	parameters := make([][]byte, 0, 1+len(accounts))
	parameters = append(parameters, txId.Bytes())
	for _, a := range accounts {
		parameters = append(parameters, a.Bytes())
	}
	messagebus.Bus.Committed.Send(name, parameters...)

	return &Result{
		TxId:        txId,
		Instruction: name,
		Accounts:    accounts,
		Timestamp:   now,
	}, nil
}

// run the program and record the transaction in one batch
func commit(instruction transactionrecord.Instruction, packed transactionrecord.Packed, txId transactionrecord.TxId, now uint64) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = program.Execute(trx, globalData.deriver, instruction, now)
	if nil != err {
		trx.Abort()
		return err
	}

	record := make([]byte, 8, 8+len(packed))
	binary.BigEndian.PutUint64(record, now)
	record = append(record, packed...)
	trx.Put(storage.Pool.Transactions, txId[:], record)

	return trx.Commit()
}
