package memstore

import (
	"context"
	"sync"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/mockdata"
)

type walletState struct {
	earnings     *entity.Earnings
	balance      *float64
	calls        []entity.CallRecord
	transactions []entity.Transaction
	methods      []entity.PaymentMethod
}

type WalletRepository struct {
	mu      sync.RWMutex
	devices map[string]*walletState
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{devices: make(map[string]*walletState)}
}

func (r *WalletRepository) state(deviceID string) *walletState {
	st, ok := r.devices[deviceID]
	if !ok {
		st = &walletState{}
		r.devices[deviceID] = st
	}
	return st
}

func (r *WalletRepository) Earnings(ctx context.Context, deviceID string) (entity.Earnings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.devices[deviceID]; ok && st.earnings != nil {
		return *st.earnings, nil
	}
	return mockdata.Earnings(), nil
}

func (r *WalletRepository) SaveEarnings(ctx context.Context, deviceID string, e entity.Earnings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(deviceID).earnings = &e
	return nil
}

func (r *WalletRepository) CallHistory(ctx context.Context, deviceID string) ([]entity.CallRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.devices[deviceID]; ok && st.calls != nil {
		return st.calls, nil
	}
	return mockdata.CallHistory(), nil
}

func (r *WalletRepository) Balance(ctx context.Context, deviceID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.devices[deviceID]; ok && st.balance != nil {
		return *st.balance, nil
	}
	return mockdata.CallerBalance, nil
}

func (r *WalletRepository) SaveBalance(ctx context.Context, deviceID string, balance float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(deviceID).balance = &balance
	return nil
}

func (r *WalletRepository) Transactions(ctx context.Context, deviceID string) ([]entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.devices[deviceID]; ok {
		return append([]entity.Transaction(nil), st.transactions...), nil
	}
	return []entity.Transaction{}, nil
}

func (r *WalletRepository) AppendTransaction(ctx context.Context, deviceID string, t entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(deviceID)
	st.transactions = append(st.transactions, t)
	return nil
}

func (r *WalletRepository) PaymentMethods(ctx context.Context, deviceID string) ([]entity.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.devices[deviceID]; ok {
		return append([]entity.PaymentMethod(nil), st.methods...), nil
	}
	return []entity.PaymentMethod{}, nil
}

func (r *WalletRepository) AddPaymentMethod(ctx context.Context, deviceID string, m entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(deviceID)
	st.methods = append(st.methods, m)
	return nil
}

func (r *WalletRepository) CoinPackages(ctx context.Context) ([]entity.CoinPackage, error) {
	return mockdata.CoinPackages(), nil
}

var _ repository.WalletRepository = (*WalletRepository)(nil)
