package payment_repo

import (
	"fmt"

	"payments-api/internal/domain/payment"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func parsePaymentRows(rows pgx.Rows) ([]payment.Payment, error) {
	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var (
		p         payment.Payment
		rawStatus string
	)
	if err := row.Scan(&p.ID, &p.SellerID, &p.BillingCode, &rawStatus); err != nil {
		return payment.Payment{}, err
	}

	status, err := payment.NewStatus(rawStatus)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("invalid status in database: %w", err)
	}
	p.Status = status
	p.Items = []payment.Item{}

	return p, nil
}

type itemRow struct {
	id        int64
	paymentID int64
	amount    decimal.Decimal
	status    string
}

func (r itemRow) toDomain() (payment.Item, error) {
	status, err := payment.NewItemStatus(r.status)
	if err != nil {
		return payment.Item{}, fmt.Errorf("invalid item status in database: %w", err)
	}
	return payment.Item{ID: r.id, Amount: r.amount, Status: status}, nil
}
