// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// output formats
const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

// Entry - one stored key/value with a decoded form when known
type Entry struct {
	Key     string      `json:"key" cbor:"1,keyasint"`
	Value   string      `json:"value" cbor:"2,keyasint"`
	Decoded interface{} `json:"decoded,omitempty" cbor:"3,keyasint,omitempty"`
}

// Pool - all entries of one pool
type Pool struct {
	Name    string  `json:"name" cbor:"1,keyasint"`
	Entries []Entry `json:"entries" cbor:"2,keyasint"`
}

// committed transaction as stored: commit time then the packed instruction
type committed struct {
	Timestamp   uint64                        `json:"timestamp" cbor:"1,keyasint"`
	Instruction transactionrecord.Instruction `json:"instruction" cbor:"2,keyasint"`
}

// select pools by case insensitive name, empty selects all
func selectPools(all []storage.NamedPool, names []string) ([]storage.NamedPool, error) {
	if 0 == len(names) {
		return all, nil
	}
	selected := make([]storage.NamedPool, 0, len(names))
names:
	for _, name := range names {
		for _, p := range all {
			if strings.EqualFold(name, p.Name) {
				selected = append(selected, p)
				continue names
			}
		}
		return nil, fmt.Errorf("no pool corresponding to: %q", name)
	}
	return selected, nil
}

// read every entry of the selected pools
func collect(pools []storage.NamedPool, decode bool) ([]Pool, error) {
	result := make([]Pool, 0, len(pools))
	for _, p := range pools {
		item := Pool{
			Name:    p.Name,
			Entries: []Entry{},
		}
		err := p.Handle.Map(func(key []byte, value []byte) error {
			entry := Entry{
				Key:   formatKey(key),
				Value: hex.EncodeToString(value),
			}
			if decode {
				entry.Decoded = decodeValue(p.Name, value)
			}
			item.Entries = append(item.Entries, entry)
			return nil
		})
		if nil != err {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// address keys are shown in base58, index keys as owner/member
func formatKey(key []byte) string {
	switch len(key) {
	case address.Length:
		a, err := address.FromBytes(key)
		if nil == err {
			return a.String()
		}
	case 2 * address.Length:
		owner, err1 := address.FromBytes(key[:address.Length])
		member, err2 := address.FromBytes(key[address.Length:])
		if nil == err1 && nil == err2 {
			return owner.String() + "/" + member.String()
		}
	}
	return hex.EncodeToString(key)
}

func decodeValue(pool string, value []byte) interface{} {
	switch pool {
	case "Clients", "Users", "Bounties", "Submissions", "Escrows":
		record, err := accountrecord.Packed(value).Unpack()
		if nil != err {
			return nil
		}
		return record

	case "Balances":
		if len(value) < 8 {
			return nil
		}
		return binary.BigEndian.Uint64(value[:8])

	case "Transactions":
		if len(value) < 9 {
			return nil
		}
		packed := transactionrecord.Packed(value[8:])
		instruction, _, err := packed.Unpack(false)
		if fault.ErrWrongNetworkForPublicKey == err {
			instruction, _, err = packed.Unpack(true)
		}
		if nil != err {
			return nil
		}
		return committed{
			Timestamp:   binary.BigEndian.Uint64(value[:8]),
			Instruction: instruction,
		}
	}
	return nil
}

// write the pools in the requested format, optionally zstd compressed
func write(w io.Writer, pools []Pool, format string, compress bool) error {
	if compress {
		encoder, err := zstd.NewWriter(w)
		if nil != err {
			return err
		}
		err = encode(encoder, pools, format)
		if nil != err {
			_ = encoder.Close()
			return err
		}
		return encoder.Close()
	}
	return encode(w, pools, format)
}

func encode(w io.Writer, pools []Pool, format string) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(pools)

	case formatCBOR:
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if nil != err {
			return err
		}
		return mode.NewEncoder(w).Encode(pools)

	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}
