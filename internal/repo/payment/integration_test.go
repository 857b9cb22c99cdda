//go:build integration
// +build integration

package payment_repo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"payments-api/internal/controller/apperror"
	"payments-api/internal/domain/payment"
	payment_repo "payments-api/internal/repo/payment"
	"payments-api/internal/testinfra"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pg *testinfra.PostgresContainer

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = testinfra.NewPostgres(ctx)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	pg.Cleanup(ctx)
	os.Exit(code)
}

func newRepo(t *testing.T) payment.Repo {
	t.Helper()
	require.NoError(t, pg.Truncate(context.Background()))
	return payment_repo.NewPgPaymentRepo(pg.Pool)
}

func TestPgPaymentRepo_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	saved, err := repo.Save(ctx, payment.Payment{
		SellerID:    123,
		BillingCode: "456",
		Status:      payment.StatusConfirmed,
		Items: []payment.Item{
			{Amount: decimal.NewFromFloat(10.50), Status: payment.ItemStatusConfirmed},
			{Amount: decimal.Zero, Status: payment.ItemStatusAwaitingComplement},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Len(t, saved.Items, 2)
	assert.NotZero(t, saved.Items[0].ID)

	found, err := repo.FindBySellerAndBillingCode(ctx, 123, "456")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, payment.StatusConfirmed, found.Status)
	require.Len(t, found.Items, 2)
	assert.True(t, found.Items[0].Amount.Equal(decimal.NewFromFloat(10.50)),
		"stored amount %s", found.Items[0].Amount)
	assert.Equal(t, payment.ItemStatusConfirmed, found.Items[0].Status)
	assert.True(t, found.Items[1].Amount.IsZero())
	assert.Equal(t, payment.ItemStatusAwaitingComplement, found.Items[1].Status)
}

func TestPgPaymentRepo_SaveDefaultsStatus(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	saved, err := repo.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "456"})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, saved.Status)

	found, err := repo.FindByBillingCode(ctx, "456")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, found.Status)
	assert.Empty(t, found.Items)
}

func TestPgPaymentRepo_SaveRejectsDuplicatePair(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "456"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "456"})
	assert.ErrorIs(t, err, apperror.ErrDuplicatePayment)
}

func TestPgPaymentRepo_UpdateReplacesItems(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	saved, err := repo.Save(ctx, payment.Payment{
		SellerID:    123,
		BillingCode: "456",
		Items: []payment.Item{
			{Amount: decimal.NewFromInt(10), Status: payment.ItemStatusConfirmed},
		},
	})
	require.NoError(t, err)

	saved.Status = payment.StatusConfirmed
	saved.Items = []payment.Item{
		{Amount: decimal.NewFromInt(20), Status: payment.ItemStatusConfirmed},
		{Amount: decimal.NewFromInt(30), Status: payment.ItemStatusConfirmed},
	}

	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	found, err := repo.FindBySellerAndBillingCode(ctx, 123, "456")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusConfirmed, found.Status)
	require.Len(t, found.Items, 2)
	assert.True(t, found.Items[0].Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, found.Items[1].Amount.Equal(decimal.NewFromInt(30)))
}

func TestPgPaymentRepo_FindBySellerID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	first, err := repo.Save(ctx, payment.Payment{
		SellerID:    123,
		BillingCode: "456",
		Items: []payment.Item{
			{Amount: decimal.NewFromInt(10), Status: payment.ItemStatusConfirmed},
		},
	})
	require.NoError(t, err)

	second, err := repo.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "789"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, payment.Payment{SellerID: 999, BillingCode: "456"})
	require.NoError(t, err)

	payments, err := repo.FindBySellerID(ctx, 123)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, first.ID, payments[0].ID)
	assert.Equal(t, second.ID, payments[1].ID)
	assert.Len(t, payments[0].Items, 1)
	assert.Empty(t, payments[1].Items)
}

func TestPgPaymentRepo_FindNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.FindByBillingCode(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)

	_, err = repo.FindBySellerAndBillingCode(ctx, 1, "missing")
	assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
}

func TestPgPaymentRepo_Exists(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "456"})
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, 123, "456")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 123, "789")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPgPaymentRepo_PairFetchLocksRow(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "456"})
	require.NoError(t, err)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- repo.InTransaction(ctx, func(tx payment.TxRepo) error {
			if _, err := tx.FindBySellerAndBillingCode(ctx, 123, "456"); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()

	<-locked

	// The second transaction must block on the row lock until the first
	// one commits.
	blockedCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	err = repo.InTransaction(blockedCtx, func(tx payment.TxRepo) error {
		_, err := tx.FindBySellerAndBillingCode(blockedCtx, 123, "456")
		return err
	})
	require.Error(t, err)

	close(release)
	require.NoError(t, <-done)

	err = repo.InTransaction(ctx, func(tx payment.TxRepo) error {
		_, err := tx.FindBySellerAndBillingCode(ctx, 123, "456")
		return err
	})
	require.NoError(t, err)
}

func TestPgPaymentRepo_InTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	err := repo.InTransaction(ctx, func(tx payment.TxRepo) error {
		if _, err := tx.Save(ctx, payment.Payment{SellerID: 123, BillingCode: "456"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	exists, err := repo.Exists(ctx, 123, "456")
	require.NoError(t, err)
	assert.False(t, exists)
}
