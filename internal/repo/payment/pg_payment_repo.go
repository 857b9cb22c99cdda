package payment_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payments-api/internal/controller/apperror"
	"payments-api/internal/domain/payment"
	"payments-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgPaymentRepo is the main repository.
type PgPaymentRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgPaymentRepo(pg *postgres.Postgres) payment.Repo {
	return &PgPaymentRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgPaymentRepo) InTransaction(ctx context.Context, fn func(tx payment.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) Save(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if p.Status == "" {
		p.Status = payment.StatusPending
	}

	if p.ID == 0 {
		if err := r.insertPayment(ctx, &p); err != nil {
			return payment.Payment{}, err
		}
	} else {
		if err := r.updatePayment(ctx, p); err != nil {
			return payment.Payment{}, err
		}
	}

	if err := r.replaceItems(ctx, &p); err != nil {
		return payment.Payment{}, err
	}
	return p, nil
}

func (r *repo) insertPayment(ctx context.Context, p *payment.Payment) error {
	query, args, err := r.builder.Insert("payments").
		Columns("seller_id", "billing_code", "status").
		Values(p.SellerID, p.BillingCode, p.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&p.ID); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperror.ErrDuplicatePayment
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *repo) updatePayment(ctx context.Context, p payment.Payment) error {
	query, args, err := r.builder.Update("payments").
		Set("seller_id", p.SellerID).
		Set("billing_code", p.BillingCode).
		Set("status", p.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// replaceItems removes the payment's stored items and inserts the current
// list; the payment exclusively owns its items.
func (r *repo) replaceItems(ctx context.Context, p *payment.Payment) error {
	query, args, err := r.builder.Delete("payment_items").
		Where(squirrel.Eq{"payment_id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete items query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete payment items: %w", err)
	}

	for i := range p.Items {
		item := &p.Items[i]
		if item.Status == "" {
			item.Status = payment.ClassifyItem(item.Amount)
		}

		query, args, err := r.builder.Insert("payment_items").
			Columns("payment_id", "amount", "status", "position").
			Values(p.ID, item.Amount, item.Status, i).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert item query: %w", err)
		}
		if err := r.db.QueryRow(ctx, query, args...).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert payment item: %w", err)
		}
	}
	return nil
}

func (r *repo) FindBySellerID(ctx context.Context, sellerID int64) ([]payment.Payment, error) {
	query, args, err := r.selectPayments().
		Where(squirrel.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	payments, err := parsePaymentRows(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repo) FindByBillingCode(ctx context.Context, billingCode string) (payment.Payment, error) {
	return r.findOne(ctx, squirrel.Eq{"billing_code": billingCode}, "")
}

// FindBySellerAndBillingCode locks the row (FOR UPDATE) so that concurrent
// confirmations of the same pair serialize on the fetch; the loser re-reads
// the row after the winner's commit and sees it confirmed.
func (r *repo) FindBySellerAndBillingCode(ctx context.Context, sellerID int64, billingCode string) (payment.Payment, error) {
	return r.findOne(ctx, squirrel.Eq{"seller_id": sellerID, "billing_code": billingCode}, "FOR UPDATE")
}

func (r *repo) findOne(ctx context.Context, where squirrel.Eq, suffix string) (payment.Payment, error) {
	qb := r.selectPayments().Where(where)
	if suffix != "" {
		qb = qb.Suffix(suffix)
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("build select query: %w", err)
	}

	p, err := scanPayment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, apperror.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("query payment: %w", err)
	}

	payments := []payment.Payment{p}
	if err := r.loadItems(ctx, payments); err != nil {
		return payment.Payment{}, err
	}
	return payments[0], nil
}

func (r *repo) Exists(ctx context.Context, sellerID int64, billingCode string) (bool, error) {
	query, args, err := r.builder.Select("1").
		From("payments").
		Where(squirrel.Eq{"seller_id": sellerID, "billing_code": billingCode}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("query payment exists: %w", err)
	}
	return exists, nil
}

func (r *repo) selectPayments() squirrel.SelectBuilder {
	return r.builder.Select("id", "seller_id", "billing_code", "status").
		From("payments")
}

// loadItems fills Items for every payment, preserving item order.
func (r *repo) loadItems(ctx context.Context, payments []payment.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	ids := make([]int64, len(payments))
	byID := make(map[int64]*payment.Payment, len(payments))
	for i := range payments {
		ids[i] = payments[i].ID
		byID[payments[i].ID] = &payments[i]
	}

	query, args, err := r.builder.Select("id", "payment_id", "amount", "status").
		From("payment_items").
		Where(squirrel.Eq{"payment_id": ids}).
		OrderBy("payment_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build select items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query payment items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row itemRow
		if err := rows.Scan(&row.id, &row.paymentID, &row.amount, &row.status); err != nil {
			return fmt.Errorf("scan item row: %w", err)
		}

		item, err := row.toDomain()
		if err != nil {
			return err
		}
		if p, ok := byID[row.paymentID]; ok {
			p.Items = append(p.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate item rows: %w", err)
	}
	return nil
}
