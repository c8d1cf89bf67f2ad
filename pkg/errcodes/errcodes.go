package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Ledger module.
	LotNotFound         failure.ErrorCode = "LotNotFound"         // referenced id/alias absent from the ledger
	LotTerminal         failure.ErrorCode = "LotTerminal"         // sold/restored lots accept no further transitions
	InvalidLotID        failure.ErrorCode = "InvalidLotID"        // garbage instead of a numeric id
	InvalidPrice        failure.ErrorCode = "InvalidPrice"        // unparseable or negative money amount
	InvalidTarget       failure.ErrorCode = "InvalidTarget"       // unparseable profit target
	StorageUnavailable  failure.ErrorCode = "StorageUnavailable"  // ledger file unreadable/unwritable
	AliasSpaceExhausted failure.ErrorCode = "AliasSpaceExhausted" // alias generator gave up
)
