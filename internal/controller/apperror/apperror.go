// Package apperror defines the sentinel errors shared across layers.
package apperror

import "errors"

var (
	// ErrPaymentNotFound signals a billing-code lookup with no match.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPayment signals a payment failing input validation.
	ErrInvalidPayment = errors.New("invalid payment")

	// ErrDuplicatePayment signals a concurrent insert for the same
	// (seller_id, billing_code) pair, rejected by the unique index.
	ErrDuplicatePayment = errors.New("payment already exists for seller and billing code")
)
