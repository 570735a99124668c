// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/ratelimit"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// Arguments - arguments for status RPC request
type Arguments struct {
	TxId transactionrecord.TxId `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	ledger.TransactionStatus
}

// New - transaction status service
func New(log *logger.L, ldgr ledger.Ledger) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Ledger:  ldgr,
	}
}

// Status - query transaction status
func (t *Transaction) Status(arguments *Arguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Ledger {
		return fault.ErrNotInitialised
	}

	status, err := t.Ledger.Status(arguments.TxId)
	if nil != err {
		return err
	}
	reply.TransactionStatus = *status
	return nil
}
