// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Each error belongs to exactly one class so that a caller can decide
// how to react to a rejected instruction:
//
//	ConflictError       refresh state and retry
//	AuthorizationError  terminal, wrong signer or substituted account
//	PreconditionError   record state forbids the operation
//	ValidationError     fix the input and retry
//	ResourceError       insufficient funds
//	ProcessError        local failure (storage, configuration, codec)
package fault
