package redisstore

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/mockdata"
	"github.com/vaanicall/vaani-backend/pkg/helpers"
)

// WalletRepository serves wallet fixtures out of redis, falling back to the
// shipped mock data for devices the seeder has not touched.
type WalletRepository struct {
	rdb *redis.Client
}

func NewWalletRepository(rdb *redis.Client) *WalletRepository {
	return &WalletRepository{rdb: rdb}
}

func walletKey(deviceID, suffix string) string {
	return "device:wallet:" + deviceID + ":" + suffix
}

const packagesKey = "catalog:coin_packages"

func (r *WalletRepository) Earnings(ctx context.Context, deviceID string) (entity.Earnings, error) {
	var e entity.Earnings
	found, err := helpers.RedisGetJSON(ctx, r.rdb, walletKey(deviceID, "earnings"), &e)
	if err != nil {
		return entity.Earnings{}, wrapUnavailable(err)
	}
	if !found {
		return mockdata.Earnings(), nil
	}
	return e, nil
}

func (r *WalletRepository) SaveEarnings(ctx context.Context, deviceID string, e entity.Earnings) error {
	if err := helpers.RedisSetJSON(ctx, r.rdb, walletKey(deviceID, "earnings"), e, 0); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (r *WalletRepository) CallHistory(ctx context.Context, deviceID string) ([]entity.CallRecord, error) {
	var recs []entity.CallRecord
	found, err := helpers.RedisGetJSON(ctx, r.rdb, walletKey(deviceID, "calls"), &recs)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	if !found {
		return mockdata.CallHistory(), nil
	}
	return recs, nil
}

func (r *WalletRepository) Balance(ctx context.Context, deviceID string) (float64, error) {
	v, err := r.rdb.Get(ctx, walletKey(deviceID, "balance")).Result()
	if errors.Is(err, redis.Nil) {
		return mockdata.CallerBalance, nil
	}
	if err != nil {
		return 0, wrapUnavailable(err)
	}
	b, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, wrapUnavailable(err)
	}
	return b, nil
}

func (r *WalletRepository) SaveBalance(ctx context.Context, deviceID string, balance float64) error {
	v := strconv.FormatFloat(balance, 'f', 2, 64)
	if err := r.rdb.Set(ctx, walletKey(deviceID, "balance"), v, 0).Err(); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (r *WalletRepository) Transactions(ctx context.Context, deviceID string) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	found, err := helpers.RedisGetJSON(ctx, r.rdb, walletKey(deviceID, "transactions"), &txs)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	if !found {
		return []entity.Transaction{}, nil
	}
	return txs, nil
}

func (r *WalletRepository) AppendTransaction(ctx context.Context, deviceID string, t entity.Transaction) error {
	txs, err := r.Transactions(ctx, deviceID)
	if err != nil {
		return err
	}
	txs = append(txs, t)
	if err := helpers.RedisSetJSON(ctx, r.rdb, walletKey(deviceID, "transactions"), txs, 0); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (r *WalletRepository) PaymentMethods(ctx context.Context, deviceID string) ([]entity.PaymentMethod, error) {
	var ms []entity.PaymentMethod
	found, err := helpers.RedisGetJSON(ctx, r.rdb, walletKey(deviceID, "payment_methods"), &ms)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	if !found {
		return []entity.PaymentMethod{}, nil
	}
	return ms, nil
}

func (r *WalletRepository) AddPaymentMethod(ctx context.Context, deviceID string, m entity.PaymentMethod) error {
	ms, err := r.PaymentMethods(ctx, deviceID)
	if err != nil {
		return err
	}
	ms = append(ms, m)
	if err := helpers.RedisSetJSON(ctx, r.rdb, walletKey(deviceID, "payment_methods"), ms, 0); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (r *WalletRepository) CoinPackages(ctx context.Context) ([]entity.CoinPackage, error) {
	var ps []entity.CoinPackage
	found, err := helpers.RedisGetJSON(ctx, r.rdb, packagesKey, &ps)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	if !found {
		return mockdata.CoinPackages(), nil
	}
	return ps, nil
}

var _ repository.WalletRepository = (*WalletRepository)(nil)
