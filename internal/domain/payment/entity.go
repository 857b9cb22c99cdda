package payment

import (
	"fmt"
	"slices"

	"payments-api/internal/controller/apperror"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a payment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
)

var AvailableStatuses = []Status{StatusPending, StatusConfirmed}

// NewStatus parses a raw status value.
func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", fmt.Errorf("invalid payment status %q", raw)
}

// ItemStatus is the settlement state of a single payment item.
type ItemStatus string

const (
	ItemStatusConfirmed ItemStatus = "CONFIRMED"
	// ItemStatusAwaitingComplement marks an item whose received amount is not
	// yet positive ("aguardando complemento").
	ItemStatusAwaitingComplement ItemStatus = "AGUARDANDO_COMPLEMENTO"
)

var AvailableItemStatuses = []ItemStatus{ItemStatusConfirmed, ItemStatusAwaitingComplement}

// NewItemStatus parses a raw item status value.
func NewItemStatus(raw string) (ItemStatus, error) {
	if slices.Contains(AvailableItemStatuses, ItemStatus(raw)) {
		return ItemStatus(raw), nil
	}
	return "", fmt.Errorf("invalid payment item status %q", raw)
}

// Payment is a seller's payment for one billing code. The store assigns the
// identity on first insert; (SellerID, BillingCode) is unique.
type Payment struct {
	ID          int64  `json:"id"`
	SellerID    int64  `json:"sellerId"`
	BillingCode string `json:"billingCode"`
	Status      Status `json:"status"`
	Items       []Item `json:"items"`
}

// Item belongs to exactly one payment and is replaced wholesale with it.
type Item struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Status ItemStatus      `json:"status"`
}

// Validate checks the fields a client must supply.
func (p *Payment) Validate() error {
	if p.SellerID <= 0 {
		return fmt.Errorf("%w: seller id must be positive", apperror.ErrInvalidPayment)
	}
	if p.BillingCode == "" {
		return fmt.Errorf("%w: billing code is required", apperror.ErrInvalidPayment)
	}
	return nil
}

// Confirm marks the payment as confirmed and classifies every item:
// a strictly positive amount is CONFIRMED, anything else is awaiting
// complement. An empty item list is valid.
func (p *Payment) Confirm() {
	p.Status = StatusConfirmed
	if p.Items == nil {
		p.Items = []Item{}
	}
	for i := range p.Items {
		p.Items[i].Status = ClassifyItem(p.Items[i].Amount)
	}
}

// ClassifyItem returns the item status for a received amount.
func ClassifyItem(amount decimal.Decimal) ItemStatus {
	if amount.IsPositive() {
		return ItemStatusConfirmed
	}
	return ItemStatusAwaitingComplement
}

// IsConfirmed reports whether the payment already went through confirmation.
func (p *Payment) IsConfirmed() bool {
	return p.Status == StatusConfirmed
}
