// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accountrecord - the persistent record kinds
//
// Every record is packed as:
//
//	Varint64(tag) ++ Varint64(version) ++ fields
//
// fields are Varint64 integers, single byte booleans, length prefixed
// strings and addresses, and counted string lists.  The tag is the
// discriminant checked before any field is decoded so a record stored
// under one kind can never be read as another.
package accountrecord
