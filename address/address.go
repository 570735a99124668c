// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/bountyd/fault"
)

// Length - bytes in an address
const Length = 32

// Address - wallet public key or derived record address
type Address [Length]byte

// Zero - the all zero address, used for "not set"
var Zero Address

// FromBytes - copy a 32 byte slice into an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	return FromBytes(buffer)
}

// Bytes - slice of the address
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true if the address was never set
func (a Address) IsZero() bool {
	return Zero == a
}

// IsOnCurve - true if the address is a valid ed25519 point,
// i.e. a private key could exist for it
func (a Address) IsOnCurve() bool {
	return isOnCurve(a[:])
}

// String - base58 text form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text into an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

func isOnCurve(buffer []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(buffer)
	return nil == err
}
