// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/fault"
)

// Sign - fill in the header from the key, sign and pack
//
// accounts must already be set with the key's wallet address first
func Sign(instruction Instruction, key *account.PrivateKey, nonce uint64) (Packed, error) {
	signer := key.Account()

	header := instruction.GetHeader()
	header.Signer = signer
	header.Nonce = nonce
	header.Signature = nil

	packed, err := instruction.Pack(signer)
	if fault.ErrInvalidSignature != err {
		if nil == err {
			return nil, fault.ErrInvalidSignature
		}
		return nil, err
	}

	header.Signature = key.Sign(packed)

	return instruction.Pack(signer)
}
