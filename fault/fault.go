// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConflictError GenericError
type AuthorizationError GenericError
type PreconditionError GenericError
type ValidationError GenericError
type ResourceError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountInUse                 = ConflictError("account is in use by another transaction")
	ErrAccountListMismatch          = AuthorizationError("account list does not match instruction")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAmountOverflow               = ResourceError("amount overflow")
	ErrBioTooLong                   = ValidationError("bio is too long")
	ErrBountyAlreadyRewarded        = ConflictError("bounty has already been rewarded")
	ErrBountyDeadlinePassed         = PreconditionError("bounty deadline has passed")
	ErrBountyHasSubmissions         = PreconditionError("cannot delete bounty that has submissions")
	ErrBountyHasSubmissionsRetitle  = PreconditionError("cannot retitle bounty that has submissions")
	ErrBountyNotFound               = PreconditionError("bounty not found")
	ErrBountyNotLive                = PreconditionError("bounty is not live")
	ErrCannotDecodeAccount          = ValidationError("cannot decode account")
	ErrCannotDecodeAddress          = ValidationError("cannot decode address")
	ErrCertificateFileAlreadyExists = ProcessError("certificate file already exists")
	ErrChecksumMismatch             = ValidationError("checksum mismatch")
	ErrClientAlreadyExists          = ConflictError("client already exists")
	ErrClientHasLiveBounties        = PreconditionError("client has live bounties")
	ErrClientNotFound               = PreconditionError("client not found")
	ErrCompanyEmailInvalid          = ValidationError("invalid company email format")
	ErrCompanyLinkInvalid           = ValidationError("invalid company link format")
	ErrCompanyNameInvalid           = ValidationError("invalid company name format")
	ErrConfigurationNotTable        = ProcessError("configuration file did not return a table")
	ErrCountTooLarge                = ValidationError("count too large")
	ErrCounterOverflow              = ProcessError("counter overflow")
	ErrCryptoFailed                 = ProcessError("encrypt/decrypt failed")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrDeadlineInvalid              = ValidationError("invalid deadline")
	ErrDescriptionTooLong           = ValidationError("description is too long")
	ErrEmailInvalid                 = ValidationError("invalid email format")
	ErrEscrowAlreadyExists          = ConflictError("escrow account already exists")
	ErrEscrowMismatch               = AuthorizationError("escrow account does not match bounty")
	ErrEscrowNotFound               = PreconditionError("escrow account not found")
	ErrEscrowResidue                = ProcessError("escrow balance remains after close")
	ErrEscrowUnderfunded            = ProcessError("escrow balance differs from reward")
	ErrFieldTooLong                 = ValidationError("field too long")
	ErrFileNotFound                 = ProcessError("file not found")
	ErrGenesisNotAllowed            = ProcessError("genesis allocations are not allowed on this chain")
	ErrIdentityNameAlreadyExists    = ConflictError("identity name already exists")
	ErrIdentityNameNotFound         = PreconditionError("identity name not found")
	ErrIdentityReceiveOnly          = PreconditionError("identity has no private key")
	ErrIncompatibleOptions          = ValidationError("incompatible options")
	ErrInsufficientFunds            = ResourceError("insufficient funds")
	ErrInvalidAddressLength         = ValidationError("invalid address length")
	ErrInvalidAmount                = ValidationError("invalid amount")
	ErrInvalidChain                 = ProcessError("invalid chain")
	ErrInvalidCount                 = ValidationError("invalid count")
	ErrInvalidCursor                = ProcessError("invalid cursor")
	ErrInvalidHashStrategy          = ProcessError("invalid derivation hash")
	ErrInvalidIpAddress             = ProcessError("invalid IP address")
	ErrInvalidKeyLength             = ValidationError("invalid key length")
	ErrInvalidKeyType               = ValidationError("invalid key type")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidPasswordLength        = ValidationError("password must be at least 8 characters")
	ErrInvalidPortNumber            = ProcessError("invalid port number")
	ErrInvalidSeedLength            = ValidationError("derivation seed is too long")
	ErrInvalidSignature             = AuthorizationError("invalid signature")
	ErrInvalidTxId                  = ValidationError("invalid transaction id")
	ErrKeyFileAlreadyExists         = ProcessError("key file already exists")
	ErrMissingParameters            = ProcessError("missing parameters")
	ErrNameInvalid                  = ValidationError("invalid name format")
	ErrNoViableBump                 = ProcessError("unable to find a viable program address bump")
	ErrNotAvailableInReadOnlyMode   = ProcessError("not available in read-only mode")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotInstructionPack           = ValidationError("not instruction pack")
	ErrNotPrivateKey                = ValidationError("not private key")
	ErrNotPublicKey                 = ValidationError("not public key")
	ErrNotRecordPack                = ProcessError("not account record pack")
	ErrPasswordMismatch             = ValidationError("passwords do not match")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordNotFound               = PreconditionError("record not found")
	ErrRecordVersion                = ProcessError("unsupported account record version")
	ErrRewardInvalid                = ValidationError("invalid reward amount")
	ErrSeedCountTooLarge            = ValidationError("too many derivation seeds")
	ErrSettingsMismatch             = ProcessError("database was created for a different chain or program")
	ErrSignatureTooLong             = ValidationError("signature too long")
	ErrSignerMismatch               = AuthorizationError("signer is not the record authority")
	ErrSkillTooLong                 = ValidationError("skill is too long")
	ErrSkillsTooMany                = ValidationError("too many skills")
	ErrSubmissionAlreadyExists      = ConflictError("submission already exists")
	ErrSubmissionMismatch           = AuthorizationError("submission is not for the specified bounty")
	ErrSubmissionNotFound           = PreconditionError("submission not found")
	ErrTitleInUse                   = ConflictError("bounty title already used by this creator")
	ErrTitleInvalid                 = ValidationError("invalid bounty title")
	ErrTooManyRecords               = ProcessError("too many records")
	ErrTransactionAlreadyExists     = ConflictError("transaction already exists")
	ErrTransactionInUse             = ProcessError("storage transaction already in use")
	ErrUnknownInstruction           = ValidationError("unknown instruction")
	ErrUserAlreadyExists            = ConflictError("user already exists")
	ErrUserHasLiveSubmissions       = PreconditionError("user has submissions on live bounties")
	ErrUserNotFound                 = PreconditionError("user not found")
	ErrWorkUrlInvalid               = ValidationError("invalid work link")
	ErrWrongAddress                 = AuthorizationError("account does not match derived address")
	ErrWrongNetworkForPublicKey     = ValidationError("wrong network for public key")
	ErrWrongPassword                = AuthorizationError("wrong password")
	ErrWrongWinnerWallet            = AuthorizationError("winner wallet does not match submission")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e ConflictError) Error() string      { return string(e) }
func (e AuthorizationError) Error() string { return string(e) }
func (e PreconditionError) Error() string  { return string(e) }
func (e ValidationError) Error() string    { return string(e) }
func (e ResourceError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrConflict(e error) bool      { _, ok := e.(ConflictError); return ok }
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrPrecondition(e error) bool  { _, ok := e.(PreconditionError); return ok }
func IsErrValidation(e error) bool    { _, ok := e.(ValidationError); return ok }
func IsErrResource(e error) bool      { _, ok := e.(ResourceError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// Kind - name of the class of an error, for RPC replies and logs
func Kind(e error) string {
	switch e.(type) {
	case nil:
		return ""
	case ConflictError:
		return "StateConflict"
	case AuthorizationError:
		return "AuthorizationFailure"
	case PreconditionError:
		return "PreconditionFailure"
	case ValidationError:
		return "ValidationFailure"
	case ResourceError:
		return "ResourceFailure"
	case ProcessError:
		return "ProcessFailure"
	default:
		return "Unclassified"
	}
}
