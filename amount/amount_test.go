// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"testing"

	"github.com/bitmark-inc/bountyd/amount"
	"github.com/bitmark-inc/bountyd/fault"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text  string
		units uint64
	}{
		{"0", 0},
		{"0.0", 0},
		{"0.000000001", 1},
		{"1", 1000000000},
		{"1.", 1000000000},
		{".5", 500000000},
		{"1.1", 1100000000},
		{"1.01", 1010000000},
		{"1.000000001", 1000000001},
		{"1.999999999", 1999999999},
		{"18446744073.709551615", 18446744073709551615},
	}

	for i, item := range tests {
		n, err := amount.Parse(item.text)
		if nil != err {
			t.Errorf("%d: %q error: %s", i, item.text, err)
			continue
		}
		if item.units != n {
			t.Errorf("%d: %q → %d  expected: %d", i, item.text, n, item.units)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{"", fault.ErrInvalidAmount},
		{".", fault.ErrInvalidAmount},
		{"1.0000000001", fault.ErrInvalidAmount},
		{"1.2.3", fault.ErrInvalidAmount},
		{"-1", fault.ErrInvalidAmount},
		{"1e9", fault.ErrInvalidAmount},
		{" 1", fault.ErrInvalidAmount},
		{"18446744073.709551616", fault.ErrAmountOverflow},
		{"18446744074", fault.ErrAmountOverflow},
	}

	for i, item := range tests {
		_, err := amount.Parse(item.text)
		if item.err != err {
			t.Errorf("%d: %q error: %v  expected: %s", i, item.text, err, item.err)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		units uint64
		text  string
	}{
		{0, "0"},
		{1, "0.000000001"},
		{500000000, "0.5"},
		{1000000000, "1"},
		{1010000000, "1.01"},
		{18446744073709551615, "18446744073.709551615"},
	}

	for i, item := range tests {
		s := amount.Format(item.units)
		if item.text != s {
			t.Errorf("%d: %d → %q  expected: %q", i, item.units, s, item.text)
		}
		n, err := amount.Parse(s)
		if nil != err || item.units != n {
			t.Errorf("%d: %q did not parse back: %d  error: %v", i, s, n, err)
		}
	}
}
