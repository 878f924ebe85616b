package entity

import "time"

// Earnings summarizes a listener's accumulated call income in rupees.
type Earnings struct {
	Lifetime  int64 `json:"lifetime"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
	Withdrawn int64 `json:"withdrawn"`
}

// Eligible returns the amount currently available for withdrawal.
func (e Earnings) Eligible() int64 {
	if e.Lifetime < e.Withdrawn {
		return 0
	}
	return e.Lifetime - e.Withdrawn
}

// CallRecord is one entry in a listener's call history.
type CallRecord struct {
	ID         int    `json:"id"`
	CallerName string `json:"caller_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Duration   string `json:"duration"`
	Earned     int64  `json:"earned"`
}

// Transaction is a wallet ledger entry (top-ups, call charges, withdrawals).
type Transaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // topup, call, withdrawal
	Amount    float64   `json:"amount"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentMethod is a saved withdrawal destination (bank account or UPI).
type PaymentMethod struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"` // bank, upi
	Label   string `json:"label"`
	Details string `json:"details"`
}

// CoinPackage is a purchasable call-credit bundle shown in the caller wallet.
type CoinPackage struct {
	ID    string  `json:"id"`
	Coins int     `json:"coins"`
	Price float64 `json:"price"`
}
