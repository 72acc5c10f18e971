package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodOnline PaymentMethod = "Online"
	PaymentMethodCheck  PaymentMethod = "Check"
	PaymentMethodOther  PaymentMethod = "Other"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline, PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentRecord is one payment applied against the estimate's total.
//
// Amount is always positive; refunds are modeled by deleting the record, not
// by negative amounts.
type PaymentRecord struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Method PaymentMethod `json:"method"`
	Notes  string        `json:"notes,omitempty"`

	// Provider fields are set only for Online payments settled through the
	// payment gateway.
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`

	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TotalPaid sums all recorded payments.
func (e *Estimate) TotalPaid() float64 {
	sum := decimal.Zero
	for _, p := range e.Payments {
		sum = sum.Add(decimal.NewFromFloat(p.Amount))
	}
	f, _ := sum.Round(2).Float64()
	return f
}

// Balance is the outstanding amount. Overpayment yields a negative balance;
// that is a display concern, not an error.
func (e *Estimate) Balance() float64 {
	f, _ := decimal.NewFromFloat(e.Total).
		Sub(decimal.NewFromFloat(e.TotalPaid())).
		Round(2).Float64()
	return f
}
