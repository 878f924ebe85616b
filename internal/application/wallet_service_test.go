package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/memstore"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/mockdata"
)

func newWalletFixture() (*WalletService, *memstore.WalletRepository) {
	repo := memstore.NewWalletRepository()
	return NewWalletService(repo, testLogger(), 100), repo
}

func TestListenerHomePayload(t *testing.T) {
	svc, _ := newWalletFixture()

	home, err := svc.ListenerHome(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, mockdata.Earnings(), home.Earnings)
	assert.Len(t, home.CallHistory, 2)
	assert.NotEmpty(t, home.SafetyTips)
}

func TestCallerWalletPayload(t *testing.T) {
	svc, _ := newWalletFixture()

	w, err := svc.CallerWallet(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, mockdata.CallerBalance, w.Balance)
	assert.Len(t, w.Packages, 4)
}

func TestAddPaymentMethod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWalletFixture()

	m, err := svc.AddPaymentMethod(ctx, "dev", AddPaymentMethodInput{
		Kind:    " UPI ",
		Label:   "personal",
		Details: "priya@upi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "upi", m.Kind)

	saved, err := svc.PaymentMethods(ctx, "dev")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, m, saved[0])
}

func TestAddPaymentMethodValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWalletFixture()

	_, err := svc.AddPaymentMethod(ctx, "dev", AddPaymentMethodInput{Kind: "card", Details: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddPaymentMethod(ctx, "dev", AddPaymentMethodInput{Kind: "bank", Details: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWithdrawFullEligibleAmount(t *testing.T) {
	ctx := context.Background()
	svc, repo := newWalletFixture()

	m, err := svc.AddPaymentMethod(ctx, "dev", AddPaymentMethodInput{Kind: "upi", Details: "priya@upi"})
	require.NoError(t, err)

	// Fixture earnings: 15750 lifetime, 12000 withdrawn, 3750 eligible.
	receipt, err := svc.Withdraw(ctx, "dev", m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3750), receipt.Amount)
	assert.Equal(t, "upi", receipt.Method)
	assert.Equal(t, int64(0), receipt.RemainingEligible)
	assert.Equal(t, "withdrawal", receipt.Transaction.Type)

	earnings, err := repo.Earnings(ctx, "dev")
	require.NoError(t, err)
	assert.Equal(t, int64(15750), earnings.Withdrawn)

	txs, err := svc.Transactions(ctx, "dev")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, receipt.Transaction.ID, txs[0].ID)
}

func TestWithdrawBelowMinimum(t *testing.T) {
	ctx := context.Background()
	svc, repo := newWalletFixture()

	m, err := svc.AddPaymentMethod(ctx, "dev", AddPaymentMethodInput{Kind: "bank", Details: "acct"})
	require.NoError(t, err)

	// 99 eligible is refused, 100 passes: the minimum is inclusive.
	require.NoError(t, repo.SaveEarnings(ctx, "dev", entity.Earnings{Lifetime: 99}))
	_, err = svc.Withdraw(ctx, "dev", m.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	require.NoError(t, repo.SaveEarnings(ctx, "dev", entity.Earnings{Lifetime: 100}))
	receipt, err := svc.Withdraw(ctx, "dev", m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), receipt.Amount)
}

func TestWithdrawRequiresSavedMethod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWalletFixture()

	_, err := svc.Withdraw(ctx, "dev", "missing")
	assert.ErrorIs(t, err, ErrValidation)

	txs, err := svc.Transactions(ctx, "dev")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestSecondWithdrawalHasNothingLeft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWalletFixture()

	m, err := svc.AddPaymentMethod(ctx, "dev", AddPaymentMethodInput{Kind: "upi", Details: "priya@upi"})
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, "dev", m.ID)
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, "dev", m.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}
