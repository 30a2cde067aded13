// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists       = ExistsError("account already exists")
	ErrAgentNotInitialised        = NotFoundError("uninitialized agent contract")
	ErrAgentNotRegistered         = NotFoundError("agent program is not registered")
	ErrAllocationExceedsAvailable = InvalidError("you cannot allocate quantity more than available amount")
	ErrAllocationExceedsOwned     = InvalidError("you cannot allocate quantity more than the amount you own")
	ErrAllocationInvalidated      = InvalidError("your allocation become invalid due to lack of available balance")
	ErrAllocationNotFound         = NotFoundError("no previous allocation found for the specified contract token")
	ErrAllocationOutOfSync        = ProcessError("critical table un-sync error")
	ErrAlreadyInitialised         = ExistsError("already initialized")
	ErrAssignToSelf               = InvalidError("cannot assign to self")
	ErrCertificateFileExists      = ExistsError("certificate file already exists")
	ErrChecksumMismatch           = InvalidError("checksum mismatch")
	ErrClearNotAllowed            = ProcessError("clearing data is only allowed on a test chain")
	ErrClientAccountNotFound      = NotFoundError("asset client account does not exist")
	ErrClientIsInheritor          = InvalidError("client cannot be the inheritor")
	ErrClientIsMiner              = InvalidError("client cannot be the miner")
	ErrClientMismatch             = InvalidError("client mismatch")
	ErrClientNotDeposited         = InvalidError("the client has not deposit service fee yet")
	ErrClientNotFound             = NotFoundError("the client is not found in agent")
	ErrClientNothingToClaim       = InvalidError("the client has nothing to claim")
	ErrConfigurationNotTable      = InvalidError("configuration must return a table")
	ErrContractNotInitialised     = NotFoundError("uninitialized contract")
	ErrCryptoFailed               = ProcessError("encryption failed")
	ErrDepositSymbolMismatch      = InvalidError("deposit must use the agent fee token")
	ErrDuplicateProgram           = ExistsError("program configured more than once")
	ErrIdentityNameAlreadyExists  = ExistsError("identity name already exists")
	ErrIdentityNameNotFound       = NotFoundError("identity name not found")
	ErrInheritanceFrozen          = InvalidError("this specified inheritance is frozen")
	ErrInheritanceNotFound        = NotFoundError("no previous token allocation to the inheritor account found")
	ErrInheritanceNotSpecified    = NotFoundError("no inheritance asset specified for the inheritor account")
	ErrInheritorNotFound          = NotFoundError("inheritor account does not exist")
	ErrInsufficientBalance        = InvalidError("overdrawn balance")
	ErrInvalidAccountName         = InvalidError("invalid account name")
	ErrInvalidBillType            = InvalidError("invalid bill type")
	ErrInvalidChain               = InvalidError("invalid chain")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidDataDirectory       = InvalidError("invalid data directory")
	ErrInvalidIPAddress           = InvalidError("invalid IP address")
	ErrInvalidKeyLength           = InvalidError("invalid key length")
	ErrInvalidKeyType             = InvalidError("invalid key type")
	ErrInvalidMemo                = LengthError("memo has more than 256 bytes")
	ErrInvalidOutcome             = InvalidError("invalid mining outcome")
	ErrInvalidPasswordLength      = InvalidError("password must be at least 8 characters")
	ErrInvalidPrivateKey          = InvalidError("invalid private key")
	ErrInvalidPublicKey           = InvalidError("invalid public key")
	ErrInvalidQuantity            = InvalidError("invalid token quantity")
	ErrInvalidSalt                = InvalidError("invalid salt")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidState               = InvalidError("invalid inheritance state")
	ErrInvalidSymbol              = InvalidError("invalid token symbol")
	ErrKeyFileExists              = ExistsError("key file already exists")
	ErrMaximumSupplyExceeded      = InvalidError("quantity exceeds available supply")
	ErrMinerAccountNotFound       = NotFoundError("miner account does not exist")
	ErrMinerNotDeposited          = InvalidError("to avoid malicious attack, mining requires a deposit of at least the mining fine")
	ErrMinerNotFound              = NotFoundError("the miner is not found in agent")
	ErrMinerNothingToClaim        = InvalidError("the miner has nothing to claim")
	ErrMiningDisabled             = InvalidError("mining disabled")
	ErrMissingAuthority           = InvalidError("missing required authority")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrNoClientProgram            = NotFoundError("client program is not registered")
	ErrNoInheritanceForClient     = NotFoundError("no inheritance specified by this client")
	ErrNonceReused                = InvalidError("request nonce already used")
	ErrNotAcceptedNotification    = InvalidError("only accept notification from client")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrNotPlainFileName           = InvalidError("file name must not contain a path")
	ErrNotPrivateKey              = InvalidError("identity has no private key")
	ErrNotTrustedAgent            = InvalidError("caller is not a trusted agent")
	ErrNothingToClaim             = InvalidError("nothing to claim")
	ErrOverflow                   = InvalidError("quantity overflow")
	ErrPasswordMismatch           = InvalidError("passwords do not match")
	ErrQuantityMismatch           = InvalidError("quantity mismatched with willget-quantity")
	ErrRateLimiting               = InvalidError("rate limiting")
	ErrReceiverNotFound           = NotFoundError("receiver account does not exist")
	ErrRecordTruncated            = RecordError("record is truncated")
	ErrRemarkTooLong              = LengthError("remark should be no more than 256 bytes")
	ErrRequestExpired             = InvalidError("request expired")
	ErrRequiredConnect            = InvalidError("connect is required")
	ErrRequiredDescription        = InvalidError("description is required")
	ErrRequiredIdentity           = InvalidError("identity is required")
	ErrSelfTransfer               = InvalidError("cannot transfer to self")
	ErrSymbolMismatch             = InvalidError("symbol precision mismatch")
	ErrTokenContractNotFound      = NotFoundError("token contract does not exist")
	ErrTokenExists                = ExistsError("token with symbol already exists")
	ErrTokenNotFound              = NotFoundError("token with symbol does not exist")
	ErrTokenNotOwned              = NotFoundError("token doesn't exist in the contract, or you don't own the token")
	ErrTransactionInUse           = ProcessError("transaction already in use")
	ErrTransactionNotInUse        = ProcessError("transaction not in use")
	ErrUnknownAccount             = NotFoundError("account does not exist")
	ErrUnknownRecordType          = RecordError("unknown record type")
	ErrWrongPassword              = InvalidError("wrong password")
	ErrWrongRecordType            = RecordError("wrong record type")
	ErrZeroQuantity               = InvalidError("you cannot assign 0 quantity of the token")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
