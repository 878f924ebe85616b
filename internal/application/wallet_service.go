package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/mockdata"
)

// WalletService serves the mock wallet and earnings surfaces. The numbers
// are fixtures (no real payment processing), but the withdrawal arithmetic
// and its minimum-amount rule are real and enforced server-side.
type WalletService struct {
	Repo            repository.WalletRepository
	Logger          *logrus.Logger
	MinimumWithdraw int64
}

func NewWalletService(repo repository.WalletRepository, logger *logrus.Logger, minimumWithdraw int64) *WalletService {
	return &WalletService{Repo: repo, Logger: logger, MinimumWithdraw: minimumWithdraw}
}

// ListenerHome is the listener landing payload: earnings, history, tips.
type ListenerHome struct {
	Earnings    entity.Earnings     `json:"earnings"`
	CallHistory []entity.CallRecord `json:"call_history"`
	SafetyTips  []string            `json:"safety_tips"`
}

func (s *WalletService) ListenerHome(ctx context.Context, deviceID string) (ListenerHome, error) {
	earnings, err := s.Repo.Earnings(ctx, deviceID)
	if err != nil {
		return ListenerHome{}, err
	}
	history, err := s.Repo.CallHistory(ctx, deviceID)
	if err != nil {
		return ListenerHome{}, err
	}
	return ListenerHome{Earnings: earnings, CallHistory: history, SafetyTips: mockdata.SafetyTips()}, nil
}

// CallerWallet is the caller wallet payload: balance and coin packages.
type CallerWallet struct {
	Balance  float64              `json:"balance"`
	Packages []entity.CoinPackage `json:"packages"`
}

func (s *WalletService) CallerWallet(ctx context.Context, deviceID string) (CallerWallet, error) {
	balance, err := s.Repo.Balance(ctx, deviceID)
	if err != nil {
		return CallerWallet{}, err
	}
	packages, err := s.Repo.CoinPackages(ctx)
	if err != nil {
		return CallerWallet{}, err
	}
	return CallerWallet{Balance: balance, Packages: packages}, nil
}

func (s *WalletService) Transactions(ctx context.Context, deviceID string) ([]entity.Transaction, error) {
	return s.Repo.Transactions(ctx, deviceID)
}

func (s *WalletService) PaymentMethods(ctx context.Context, deviceID string) ([]entity.PaymentMethod, error) {
	return s.Repo.PaymentMethods(ctx, deviceID)
}

// AddPaymentMethodInput describes a new withdrawal destination.
type AddPaymentMethodInput struct {
	Kind    string
	Label   string
	Details string
}

func (s *WalletService) AddPaymentMethod(ctx context.Context, deviceID string, in AddPaymentMethodInput) (entity.PaymentMethod, error) {
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if kind != "bank" && kind != "upi" {
		return entity.PaymentMethod{}, fmt.Errorf("%w: kind must be bank or upi", ErrValidation)
	}
	if strings.TrimSpace(in.Details) == "" {
		return entity.PaymentMethod{}, fmt.Errorf("%w: details required", ErrValidation)
	}
	m := entity.PaymentMethod{
		ID:      uuid.NewString(),
		Kind:    kind,
		Label:   strings.TrimSpace(in.Label),
		Details: strings.TrimSpace(in.Details),
	}
	if err := s.Repo.AddPaymentMethod(ctx, deviceID, m); err != nil {
		return entity.PaymentMethod{}, err
	}
	return m, nil
}

// WithdrawReceipt records a successful withdrawal of the full eligible
// amount to a saved payment method.
type WithdrawReceipt struct {
	Amount            int64              `json:"amount"`
	Method            string             `json:"method"`
	Transaction       entity.Transaction `json:"transaction"`
	RemainingEligible int64              `json:"remaining_eligible"`
}

// Withdraw pays out the full eligible amount. Below the minimum the request
// is refused with an alert-style message, exactly like the client's check.
func (s *WalletService) Withdraw(ctx context.Context, deviceID, methodID string) (WithdrawReceipt, error) {
	earnings, err := s.Repo.Earnings(ctx, deviceID)
	if err != nil {
		return WithdrawReceipt{}, err
	}
	eligible := earnings.Eligible()
	if eligible < s.MinimumWithdraw {
		return WithdrawReceipt{}, fmt.Errorf("%w: minimum withdrawal amount is ₹%d", ErrInsufficientBalance, s.MinimumWithdraw)
	}

	methods, err := s.Repo.PaymentMethods(ctx, deviceID)
	if err != nil {
		return WithdrawReceipt{}, err
	}
	var method *entity.PaymentMethod
	for i := range methods {
		if methods[i].ID == methodID {
			method = &methods[i]
			break
		}
	}
	if method == nil {
		return WithdrawReceipt{}, fmt.Errorf("%w: set up a bank account or UPI ID first", ErrValidation)
	}

	earnings.Withdrawn += eligible
	if err := s.Repo.SaveEarnings(ctx, deviceID, earnings); err != nil {
		return WithdrawReceipt{}, err
	}
	tx := entity.Transaction{
		ID:        uuid.NewString(),
		Type:      "withdrawal",
		Amount:    float64(eligible),
		Note:      "withdrawal to " + method.Kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.AppendTransaction(ctx, deviceID, tx); err != nil {
		return WithdrawReceipt{}, err
	}

	s.Logger.WithFields(logrus.Fields{"device_id": deviceID, "amount": eligible}).Info("withdrawal recorded")
	return WithdrawReceipt{Amount: eligible, Method: method.Kind, Transaction: tx, RemainingEligible: earnings.Eligible()}, nil
}
