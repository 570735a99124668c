// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/bountyd/fault"
)

// TxIdLength - bytes in a transaction id
const TxIdLength = 32

// TxId - SHA3-256 of a complete signed instruction
// represented as hex text for JSON encoding
type TxId [TxIdLength]byte

// MakeTxId - transaction id of a packed instruction
func (record Packed) MakeTxId() TxId {
	return TxId(sha3.Sum256(record))
}

// Bytes - the id as a byte slice
func (txId TxId) Bytes() []byte {
	return txId[:]
}

// String - hex for %s
func (txId TxId) String() string {
	return hex.EncodeToString(txId[:])
}

// GoString - for %#v
func (txId TxId) GoString() string {
	return "<txId:" + hex.EncodeToString(txId[:]) + ">"
}

// Scan - hex text for the fmt scan routines
func (txId *TxId) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return txId.UnmarshalText(token)
}

// MarshalText - convert to hex text
func (txId TxId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(TxIdLength))
	hex.Encode(buffer, txId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to a transaction id
func (txId *TxId) UnmarshalText(s []byte) error {
	if TxIdLength != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidTxId
	}
	byteCount, err := hex.Decode(txId[:], s)
	if nil != err {
		return err
	}
	if TxIdLength != byteCount {
		return fault.ErrInvalidTxId
	}
	return nil
}

// TxIdFromBytes - convert and validate a binary id
func TxIdFromBytes(txId *TxId, buffer []byte) error {
	if TxIdLength != len(buffer) {
		return fault.ErrInvalidTxId
	}
	copy(txId[:], buffer)
	return nil
}

// MarshalText - packed instruction as hex text
func (record Packed) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(buffer, record)
	return buffer, nil
}

// UnmarshalText - hex text to packed instruction
func (record *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer[:byteCount]
	return nil
}
