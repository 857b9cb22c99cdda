package payment

import (
	"context"
	"fmt"

	"payments-api/internal/messaging"
	"payments-api/pkg/logger"
	"payments-api/pkg/metrics"
)

// Envelope types published after a successful confirmation.
const (
	EventNewPaymentConfirmed = "payment.confirmed.new"
	EventPaymentConfirmed    = "payment.confirmed"
)

// ConfirmedEvent is the payload of a confirmation notification.
type ConfirmedEvent struct {
	PaymentID   int64  `json:"payment_id"`
	SellerID    int64  `json:"seller_id"`
	BillingCode string `json:"billing_code"`
}

// Service owns the confirmation decision tree and the read-side lookups.
type Service struct {
	repo      Repo
	publisher messaging.Publisher
	log       *logger.Logger
}

func NewService(repo Repo, publisher messaging.Publisher, l *logger.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, log: l}
}

// ConfirmPayment applies the confirmation decision tree to an incoming
// payment:
//
//   - no payment for (seller, billing code) yet: confirm the incoming one,
//     persist it, notify downstream;
//   - an already-confirmed payment exists: return it unchanged, no write,
//     no notification;
//   - a pending payment exists: confirm the incoming payment under the
//     existing identity, persist, notify.
//
// The exists-fetch-save sequence runs in one transaction; the notification
// goes out only after the transaction committed. A publish failure surfaces
// as the operation's failure even though the write already happened, so
// callers retry end-to-end (the retry lands on the idempotent path).
func (s *Service) ConfirmPayment(ctx context.Context, incoming Payment) (Payment, error) {
	if err := incoming.Validate(); err != nil {
		return Payment{}, err
	}

	var (
		result    Payment
		eventType string
	)

	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		exists, err := tx.Exists(ctx, incoming.SellerID, incoming.BillingCode)
		if err != nil {
			return fmt.Errorf("check payment exists: %w", err)
		}

		if exists {
			existing, err := tx.FindBySellerAndBillingCode(ctx, incoming.SellerID, incoming.BillingCode)
			if err != nil {
				return fmt.Errorf("load existing payment: %w", err)
			}
			if existing.IsConfirmed() {
				result = existing
				return nil
			}
			// Confirm the incoming payment under the stored identity.
			if incoming.ID == 0 {
				incoming.ID = existing.ID
			}
			eventType = EventPaymentConfirmed
		} else {
			eventType = EventNewPaymentConfirmed
		}

		incoming.Confirm()

		saved, err := tx.Save(ctx, incoming)
		if err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		result = saved
		return nil
	})
	if err != nil {
		metrics.ConfirmationsTotal.WithLabelValues("failed").Inc()
		return Payment{}, err
	}

	if eventType == "" {
		s.log.DebugContext(ctx, "payment already confirmed",
			"payment_id", result.ID, "billing_code", result.BillingCode)
		metrics.ConfirmationsTotal.WithLabelValues("already_confirmed").Inc()
		return result, nil
	}

	if err := s.publishConfirmation(ctx, eventType, result); err != nil {
		metrics.ConfirmationsTotal.WithLabelValues("failed").Inc()
		return Payment{}, fmt.Errorf("publish confirmation: %w", err)
	}

	if eventType == EventNewPaymentConfirmed {
		metrics.ConfirmationsTotal.WithLabelValues("created").Inc()
	} else {
		metrics.ConfirmationsTotal.WithLabelValues("confirmed").Inc()
	}
	return result, nil
}

func (s *Service) publishConfirmation(ctx context.Context, eventType string, p Payment) error {
	env, err := messaging.NewEnvelope(p.BillingCode, eventType, ConfirmedEvent{
		PaymentID:   p.ID,
		SellerID:    p.SellerID,
		BillingCode: p.BillingCode,
	})
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}

	if err := s.publisher.Publish(ctx, env); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "confirmation notification published",
		"payment_id", p.ID, "type", eventType)
	return nil
}

// GetPaymentsBySeller returns the seller's payments, oldest first.
func (s *Service) GetPaymentsBySeller(ctx context.Context, sellerID int64) ([]Payment, error) {
	payments, err := s.repo.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get payments by seller %d: %w", sellerID, err)
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}

// GetPaymentByBillingCode returns the payment for the billing code or
// apperror.ErrPaymentNotFound.
func (s *Service) GetPaymentByBillingCode(ctx context.Context, billingCode string) (Payment, error) {
	p, err := s.repo.FindByBillingCode(ctx, billingCode)
	if err != nil {
		return Payment{}, fmt.Errorf("get payment by billing code %s: %w", billingCode, err)
	}
	return p, nil
}

// ValidatePaymentExists reports whether a payment exists for the exact
// (seller, billing code) pair.
func (s *Service) ValidatePaymentExists(ctx context.Context, sellerID int64, billingCode string) (bool, error) {
	exists, err := s.repo.Exists(ctx, sellerID, billingCode)
	if err != nil {
		return false, fmt.Errorf("validate payment exists: %w", err)
	}
	return exists, nil
}

// SavePayment upserts the payment as-is, bypassing the confirmation logic.
func (s *Service) SavePayment(ctx context.Context, p Payment) (Payment, error) {
	if err := p.Validate(); err != nil {
		return Payment{}, err
	}

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return Payment{}, fmt.Errorf("save payment: %w", err)
	}
	return saved, nil
}
