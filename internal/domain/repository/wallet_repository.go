package repository

import (
	"context"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
)

// WalletRepository serves the mock wallet, earnings and call-history data.
// Listener data is keyed per device; catalog data (coin packages) is global.
type WalletRepository interface {
	Earnings(ctx context.Context, deviceID string) (entity.Earnings, error)
	SaveEarnings(ctx context.Context, deviceID string, e entity.Earnings) error
	CallHistory(ctx context.Context, deviceID string) ([]entity.CallRecord, error)
	Balance(ctx context.Context, deviceID string) (float64, error)
	SaveBalance(ctx context.Context, deviceID string, balance float64) error
	Transactions(ctx context.Context, deviceID string) ([]entity.Transaction, error)
	AppendTransaction(ctx context.Context, deviceID string, t entity.Transaction) error
	PaymentMethods(ctx context.Context, deviceID string) ([]entity.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, deviceID string, m entity.PaymentMethod) error
	CoinPackages(ctx context.Context) ([]entity.CoinPackage, error)
}
