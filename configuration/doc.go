// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the base, string, table, math and os libraries are available, so
// os.getenv can supply environment items and dofile can pull in a
// shared fragment.  The io library is not loaded.  The file must
// return a table:
//
//	local M = {}
//	M.data_directory = "."
//	M.chain = "local"
//	return M
package configuration
