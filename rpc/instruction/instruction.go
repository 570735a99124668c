// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/ratelimit"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const (
	rateLimitInstruction = 100
	rateBurstInstruction = 50

	// far larger than any valid instruction
	maximumPackedLength = 65536
)

// Instruction - submit signed instructions to the ledger
type Instruction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// SubmitArguments - one signed instruction as hex
type SubmitArguments struct {
	Packed transactionrecord.Packed `json:"packed"`
}

// SubmitReply - the committed result
type SubmitReply struct {
	ledger.Result
}

// New - instruction submission service
func New(log *logger.L, ldgr ledger.Ledger) *Instruction {
	return &Instruction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitInstruction, rateBurstInstruction),
		Ledger:  ldgr,
	}
}

// Submit - returns once the instruction is committed or rejected
func (instruction *Instruction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(instruction.Limiter); nil != err {
		return err
	}

	if nil == instruction.Ledger {
		return fault.ErrNotInitialised
	}

	if 0 == len(arguments.Packed) {
		return fault.ErrMissingParameters
	}
	if len(arguments.Packed) > maximumPackedLength {
		return fault.ErrNotInstructionPack
	}

	log := instruction.Log
	log.Debugf("Instruction.Submit: %x", arguments.Packed)

	result, err := instruction.Ledger.Submit(arguments.Packed)
	if nil != err {
		log.Infof("Instruction.Submit: rejected: %s", err)
		return err
	}

	log.Infof("Instruction.Submit: %s txId: %s", result.Instruction, result.TxId)
	reply.Result = *result
	return nil
}
