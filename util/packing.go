// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"errors"
)

// maximum length accepted for any length prefixed field
const maximumFieldLength = 8192

// errors returned by the Unpacker, callers normally translate these
// into the fault appropriate to the record being decoded
var (
	ErrTruncated     = errors.New("truncated buffer")
	ErrFieldTooLarge = errors.New("field too large")
)

// AppendUint64 - append a Varint64 encoded value
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a Varint64 length followed by the bytes
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a Varint64 length followed by the string
func AppendString(buffer []byte, s string) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// AppendBool - one byte, 0x00 or 0x01
func AppendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// AppendStrings - a Varint64 count then each string
func AppendStrings(buffer []byte, items []string) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(items)))...)
	for _, s := range items {
		buffer = AppendString(buffer, s)
	}
	return buffer
}

// Unpacker - sequential reader for buffers produced by the Append functions
//
// the first failure is remembered and all later reads return zero
// values, so a decoder can read every field then check Err once
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading at the beginning of the buffer
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Uint64 - read a Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = ErrTruncated
		return 0
	}
	u.n += count
	return value
}

// Bytes - read a length prefixed byte slice, the result is a copy
func (u *Unpacker) Bytes(maximum int) []byte {
	if nil != u.err {
		return nil
	}
	if maximum <= 0 || maximum > maximumFieldLength {
		maximum = maximumFieldLength
	}
	length, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = ErrTruncated
		return nil
	}
	if length > uint64(maximum) {
		u.err = ErrFieldTooLarge
		return nil
	}
	start := u.n + count
	end := start + int(length)
	if end > len(u.buffer) {
		u.err = ErrTruncated
		return nil
	}
	u.n = end
	result := make([]byte, length)
	copy(result, u.buffer[start:end])
	return result
}

// Fixed - read a length prefixed field that must be exactly size bytes
func (u *Unpacker) Fixed(size int) []byte {
	b := u.Bytes(size)
	if nil == u.err && len(b) != size {
		u.err = ErrTruncated
		return nil
	}
	return b
}

// String - read a length prefixed string
func (u *Unpacker) String(maximum int) string {
	return string(u.Bytes(maximum))
}

// Strings - read a counted list of strings
func (u *Unpacker) Strings(maximumCount int, maximumLength int) []string {
	count := u.Uint64()
	if nil != u.err {
		return nil
	}
	if count > uint64(maximumCount) {
		u.err = ErrFieldTooLarge
		return nil
	}
	result := make([]string, 0, count)
	for i := uint64(0); i < count; i += 1 {
		s := u.String(maximumLength)
		if nil != u.err {
			return nil
		}
		result = append(result, s)
	}
	return result
}

// Bool - read a single 0x00/0x01 byte
func (u *Unpacker) Bool() bool {
	if nil != u.err {
		return false
	}
	if u.n >= len(u.buffer) {
		u.err = ErrTruncated
		return false
	}
	b := u.buffer[u.n]
	if b > 0x01 {
		u.err = ErrTruncated
		return false
	}
	u.n += 1
	return 0x01 == b
}

// Offset - number of bytes consumed so far
func (u *Unpacker) Offset() int {
	return u.n
}

// Remaining - bytes not yet consumed
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Err - first error seen, if any
func (u *Unpacker) Err() error {
	return u.err
}
