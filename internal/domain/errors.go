package domain

import "errors"

// Sentinel errors for every failure the API can surface. The message text is
// part of the wire contract: handlers serialize it verbatim into {"error": ...},
// so changing a string here changes the HTTP responses.
var (
	// missing or malformed input -> 400
	ErrMissingFields    = errors.New("Missing fields")
	ErrInvalidBVNFormat = errors.New("Invalid BVN format")
	ErrInvalidAction    = errors.New("Invalid action")

	// transition guard failed -> 400
	ErrCannotConfirm    = errors.New("Cannot confirm")
	ErrRefundNotAllowed = errors.New("Refund not allowed at this stage")

	// duplicate unique key -> 409
	ErrUserExists = errors.New("User already exists")

	// flagged identifier -> 403
	ErrBVNFlagged = errors.New("This BVN is flagged for fraud")

	// unknown reference -> 404
	ErrUserNotFound        = errors.New("User not found")
	ErrBuyerNotFound       = errors.New("Buyer not found")
	ErrTransactionNotFound = errors.New("Transaction not found")
)
