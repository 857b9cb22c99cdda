package payment_repo

import (
	"context"
	"errors"
	"testing"

	"payments-api/internal/controller/apperror"
	"payments-api/internal/domain/payment"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestFindBySellerID(t *testing.T) {
	r, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should return seller payments in insertion order", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "seller_id", "billing_code", "status"}).
			AddRow(int64(1), int64(123), "456", "CONFIRMED").
			AddRow(int64(2), int64(123), "789", "PENDING")

		mock.ExpectQuery(`SELECT id, seller_id, billing_code, status FROM payments WHERE seller_id = \$1 ORDER BY id`).
			WithArgs(int64(123)).
			WillReturnRows(rows)

		mock.ExpectQuery(`SELECT id, payment_id, amount, status FROM payment_items WHERE payment_id IN \(\$1,\$2\) ORDER BY payment_id, position`).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(mock.NewRows([]string{"id", "payment_id", "amount", "status"}))

		result, err := r.FindBySellerID(ctx, 123)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int64(1), result[0].ID)
		assert.Equal(t, payment.StatusConfirmed, result[0].Status)
		assert.Equal(t, int64(2), result[1].ID)
		assert.Equal(t, payment.StatusPending, result[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return empty result for unknown seller", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, seller_id, billing_code, status FROM payments WHERE seller_id = \$1 ORDER BY id`).
			WithArgs(int64(999)).
			WillReturnRows(mock.NewRows([]string{"id", "seller_id", "billing_code", "status"}))

		result, err := r.FindBySellerID(ctx, 999)

		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByBillingCode(t *testing.T) {
	r, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should return the single match", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, seller_id, billing_code, status FROM payments WHERE billing_code = \$1`).
			WithArgs("456").
			WillReturnRows(mock.NewRows([]string{"id", "seller_id", "billing_code", "status"}).
				AddRow(int64(1), int64(123), "456", "CONFIRMED"))

		mock.ExpectQuery(`SELECT id, payment_id, amount, status FROM payment_items WHERE payment_id IN \(\$1\) ORDER BY payment_id, position`).
			WithArgs(int64(1)).
			WillReturnRows(mock.NewRows([]string{"id", "payment_id", "amount", "status"}))

		result, err := r.FindByBillingCode(ctx, "456")

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, "456", result.BillingCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should signal not found explicitly", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, seller_id, billing_code, status FROM payments WHERE billing_code = \$1`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := r.FindByBillingCode(ctx, "missing")

		assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindBySellerAndBillingCode(t *testing.T) {
	r, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should scope the lookup to the pair and lock the row", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, seller_id, billing_code, status FROM payments WHERE billing_code = \$1 AND seller_id = \$2 FOR UPDATE`).
			WithArgs("456", int64(123)).
			WillReturnRows(mock.NewRows([]string{"id", "seller_id", "billing_code", "status"}).
				AddRow(int64(7), int64(123), "456", "PENDING"))

		mock.ExpectQuery(`SELECT id, payment_id, amount, status FROM payment_items WHERE payment_id IN \(\$1\) ORDER BY payment_id, position`).
			WithArgs(int64(7)).
			WillReturnRows(mock.NewRows([]string{"id", "payment_id", "amount", "status"}))

		result, err := r.FindBySellerAndBillingCode(ctx, 123, "456")

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExists(t *testing.T) {
	r, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should report existence of the exact pair", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM payments WHERE billing_code = \$1 AND seller_id = \$2 \)`).
			WithArgs("456", int64(123)).
			WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := r.Exists(ctx, 123, "456")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should report absence", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM payments WHERE billing_code = \$1 AND seller_id = \$2 \)`).
			WithArgs("789", int64(123)).
			WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := r.Exists(ctx, 123, "789")

		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSave(t *testing.T) {
	r, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should insert a new payment with its items", func(t *testing.T) {
		p := payment.Payment{
			SellerID:    123,
			BillingCode: "456",
			Status:      payment.StatusConfirmed,
			Items: []payment.Item{
				{Amount: decimal.NewFromInt(10), Status: payment.ItemStatusConfirmed},
			},
		}

		mock.ExpectQuery(`INSERT INTO payments \(seller_id,billing_code,status\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
			WithArgs(int64(123), "456", payment.StatusConfirmed).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))

		mock.ExpectExec(`DELETE FROM payment_items WHERE payment_id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		mock.ExpectQuery(`INSERT INTO payment_items \(payment_id,amount,status,position\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
			WithArgs(int64(1), pgxmock.AnyArg(), payment.ItemStatusConfirmed, 0).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(11)))

		saved, err := r.Save(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		require.Len(t, saved.Items, 1)
		assert.Equal(t, int64(11), saved.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map duplicate key to ErrDuplicatePayment", func(t *testing.T) {
		p := payment.Payment{SellerID: 123, BillingCode: "456", Status: payment.StatusConfirmed}

		mock.ExpectQuery(`INSERT INTO payments \(seller_id,billing_code,status\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
			WithArgs(int64(123), "456", payment.StatusConfirmed).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "payments_seller_billing_uq"`))

		_, err := r.Save(ctx, p)

		assert.ErrorIs(t, err, apperror.ErrDuplicatePayment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should update in place when the payment has an identity", func(t *testing.T) {
		p := payment.Payment{
			ID:          7,
			SellerID:    123,
			BillingCode: "456",
			Status:      payment.StatusConfirmed,
		}

		mock.ExpectExec(`UPDATE payments SET seller_id = \$1, billing_code = \$2, status = \$3, updated_at = NOW\(\) WHERE id = \$4`).
			WithArgs(int64(123), "456", payment.StatusConfirmed, int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`DELETE FROM payment_items WHERE payment_id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		saved, err := r.Save(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, int64(7), saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should default a blank status to PENDING", func(t *testing.T) {
		p := payment.Payment{SellerID: 123, BillingCode: "999"}

		mock.ExpectQuery(`INSERT INTO payments \(seller_id,billing_code,status\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
			WithArgs(int64(123), "999", payment.StatusPending).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(3)))

		mock.ExpectExec(`DELETE FROM payment_items WHERE payment_id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		saved, err := r.Save(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, saved.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
