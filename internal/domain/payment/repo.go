package payment

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package payment

// TxRepo is the store contract available inside and outside a transaction.
type TxRepo interface {
	// Save inserts the payment when it has no identity and updates it in
	// place otherwise. Items are replaced wholesale. Returns the persisted
	// payment with identities assigned.
	Save(ctx context.Context, p Payment) (Payment, error)

	// FindBySellerID returns the seller's payments in insertion order.
	// An empty result is a valid, non-error outcome.
	FindBySellerID(ctx context.Context, sellerID int64) ([]Payment, error)

	// FindByBillingCode returns the single payment with the billing code or
	// apperror.ErrPaymentNotFound.
	FindByBillingCode(ctx context.Context, billingCode string) (Payment, error)

	// FindBySellerAndBillingCode is the pair-scoped lookup the confirmation
	// path uses. Returns apperror.ErrPaymentNotFound on no match.
	FindBySellerAndBillingCode(ctx context.Context, sellerID int64, billingCode string) (Payment, error)

	// Exists reports whether a payment exists for the exact pair.
	Exists(ctx context.Context, sellerID int64, billingCode string) (bool, error)
}

// Repo adds the transaction boundary to TxRepo.
type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
