// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// TrackingStatus - state of a transaction id
type TrackingStatus int

// possible status values
const (
	TrackingNotFound  TrackingStatus = iota
	TrackingCommitted TrackingStatus = iota
	TrackingRejected  TrackingStatus = iota
)

// String - convert the tracking value for printf
func (ts TrackingStatus) String() string {
	switch ts {
	case TrackingNotFound:
		return "NotFound"
	case TrackingCommitted:
		return "Committed"
	case TrackingRejected:
		return "Rejected"
	default:
		return "*Unknown*"
	}
}

// MarshalText - convert the tracking value for JSON
func (ts TrackingStatus) MarshalText() ([]byte, error) {
	buffer := []byte(ts.String())
	return buffer, nil
}

// UnmarshalText - convert the tracking value from JSON to enumeration
func (ts *TrackingStatus) UnmarshalText(s []byte) error {
	switch string(s) {
	case "NotFound":
		*ts = TrackingNotFound
	case "Committed":
		*ts = TrackingCommitted
	case "Rejected":
		*ts = TrackingRejected
	default:
		*ts = TrackingNotFound
	}
	return nil
}

// TransactionStatus - result of a status query
type TransactionStatus struct {
	Status      TrackingStatus                `json:"status"`
	Instruction string                        `json:"instruction,omitempty"`
	Timestamp   uint64                        `json:"timestamp,string,omitempty"`
	Error       string                        `json:"error,omitempty"`
	Packed      transactionrecord.Packed      `json:"packed,omitempty"`
	Record      transactionrecord.Instruction `json:"record,omitempty"`
}

// Status - committed instructions are read from storage, recent
// rejections from memory
func Status(txId transactionrecord.TxId) (*TransactionStatus, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	timestamp, packed := storage.Pool.Transactions.GetNB(txId[:])
	if nil != packed {
		instruction, _, err := transactionrecord.Packed(packed).Unpack(globalData.testnet)
		if nil != err {
			return nil, err
		}
		return &TransactionStatus{
			Status:      TrackingCommitted,
			Instruction: instruction.Tag().String(),
			Timestamp:   timestamp,
			Packed:      packed,
			Record:      instruction,
		}, nil
	}

	if reason, ok := globalData.rejected.Get(txId.String()); ok {
		return &TransactionStatus{
			Status: TrackingRejected,
			Error:  reason,
		}, nil
	}

	return &TransactionStatus{
		Status: TrackingNotFound,
	}, nil
}
