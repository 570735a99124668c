// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/instruction"
	"github.com/bitmark-inc/bountyd/rpc/transaction"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// Submit - send one signed instruction and wait for the result
func (c *Client) Submit(packed transactionrecord.Packed) (*ledger.Result, error) {
	arguments := instruction.SubmitArguments{
		Packed: packed,
	}
	var reply instruction.SubmitReply
	err := c.call("Instruction.Submit", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply.Result, nil
}

// StatusReply - as the daemon reply with the decoded instruction
// kept as raw JSON
type StatusReply struct {
	Status      ledger.TrackingStatus    `json:"status"`
	Instruction string                   `json:"instruction,omitempty"`
	Timestamp   uint64                   `json:"timestamp,string,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Packed      transactionrecord.Packed `json:"packed,omitempty"`
	Record      json.RawMessage          `json:"record,omitempty"`
}

// GetTransactionStatus - perform a status request
func (c *Client) GetTransactionStatus(txId transactionrecord.TxId) (*StatusReply, error) {
	arguments := transaction.Arguments{
		TxId: txId,
	}
	var reply StatusReply
	err := c.call("Transaction.Status", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
