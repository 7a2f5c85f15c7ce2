// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type AuthorisationError GenericError
type ExistsError GenericError
type InsufficientError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	AlreadyNotified          = ProcessError("transaction already notified")
	AmountTooSmall           = InvalidError("amount is less than the fee")
	AuctionNotFound          = NotFoundError("auction not found")
	BidTooSmall              = InvalidError("bid is below the minimum")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ConfigurationNotTable    = InvalidError("configuration did not return a table")
	DatabaseIsNotSet         = ProcessError("database is not set")
	FeeExceededLimit         = InvalidError("fee exceeds the limit")
	IncompatibleVersion      = InvalidError("incompatible database version")
	InsufficientAllowance    = InsufficientError("insufficient allowance")
	InsufficientBalance      = InsufficientError("insufficient balance")
	InvalidAmount            = InvalidError("invalid amount")
	InvalidCount             = InvalidError("invalid count")
	InvalidFeeLimit          = InvalidError("fee limit does not apply when the fee is included")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidPeriod            = InvalidError("invalid auction period")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidPrivateKey        = InvalidError("invalid private key")
	InvalidRatio             = InvalidError("invalid fee ratio")
	InvalidRegion            = InvalidError("invalid storage region")
	InvalidSetting           = InvalidError("invalid setting")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	KeyFileExists            = ExistsError("key file already exists")
	LimitTooLarge            = InvalidError("limit exceeds maximum query length")
	MissingParameters        = InvalidError("missing parameters")
	NotificationFailed       = ProcessError("notification failed")
	NotificationInProgress   = ProcessError("notification already in progress")
	NotInitialised           = ProcessError("not initialised")
	Overflow                 = ArithmeticError("arithmetic overflow")
	RateLimiting             = InvalidError("rate limiting")
	ReceiverNotFound         = NotFoundError("notification receiver not found")
	RecordTruncated          = InvalidError("record is truncated")
	TooEarly                 = ProcessError("auction period has not elapsed")
	TransactionAlreadyExists = ExistsError("transaction already exists")
	TransactionNotFound      = NotFoundError("transaction not found")
	TransactionInUse         = ProcessError("storage transaction already finished")
	Unauthorised             = AuthorisationError("caller is not the owner")
	Underflow                = ArithmeticError("arithmetic underflow")
	UnknownRecordKind        = InvalidError("unknown record kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string    { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InsufficientError) Error() string  { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool    { _, ok := e.(ArithmeticError); return ok }
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInsufficient(e error) bool  { _, ok := e.(InsufficientError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// IsErrNotification - an error from a delivery attempt
func IsErrNotification(e error) bool {
	switch e {
	case AlreadyNotified, NotificationFailed, NotificationInProgress:
		return true
	}
	return false
}
