// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - convert between base units and decimal text
//
// one coin is 10^9 base units so "0.000000001" is uint64(1)
package amount

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/bountyd/fault"
)

// Decimals - digits after the decimal point
const Decimals = 9

// UnitsPerCoin - base units in one coin
const UnitsPerCoin = uint64(1000000000)

// Parse - convert decimal text to base units
//
// at most Decimals digits may follow the point; anything other than
// digits and a single point is an error
func Parse(s string) (uint64, error) {
	if "" == s {
		return 0, fault.ErrInvalidAmount
	}

	n := uint64(0)
	point := false
	decimals := 0
	digits := 0

	for _, b := range []byte(s) {
		switch {
		case b >= '0' && b <= '9':
			if point {
				if decimals >= Decimals {
					return 0, fault.ErrInvalidAmount
				}
				decimals += 1
			}
			d := uint64(b - '0')
			if n > (^uint64(0)-d)/10 {
				return 0, fault.ErrAmountOverflow
			}
			n = n*10 + d
			digits += 1
		case '.' == b && !point:
			point = true
		default:
			return 0, fault.ErrInvalidAmount
		}
	}
	if 0 == digits {
		return 0, fault.ErrInvalidAmount
	}

	for decimals < Decimals {
		if n > ^uint64(0)/10 {
			return 0, fault.ErrAmountOverflow
		}
		n *= 10
		decimals += 1
	}
	return n, nil
}

// Format - base units as decimal text without trailing zeros
func Format(n uint64) string {
	whole := strconv.FormatUint(n/UnitsPerCoin, 10)
	fraction := n % UnitsPerCoin
	if 0 == fraction {
		return whole
	}
	f := strconv.FormatUint(fraction, 10)
	f = strings.Repeat("0", Decimals-len(f)) + f
	return whole + "." + strings.TrimRight(f, "0")
}
