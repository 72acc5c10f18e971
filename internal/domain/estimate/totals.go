// Package estimate holds the pure document engine: the totals calculator, the
// estimate/client state machine, the append-only revision log, and the
// line-item ledger helpers. Everything here is side-effect free; persistence
// and coordination live in the usecase layer.
package estimate

import (
	"github.com/shopspring/decimal"

	"contractor_crm/internal/domain/entities"
)

var oneHundred = decimal.NewFromInt(100)

// TotalsInput is everything the calculator depends on. It is deliberately a
// value type so callers cannot smuggle state in.
type TotalsInput struct {
	LineItems    []entities.LineItem
	Discount     float64
	DiscountType entities.DiscountType
	TaxRate      float64
	DepositType  entities.DepositType
	DepositValue float64
}

type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
	DepositAmount  float64 `json:"deposit_amount"`
}

// LineTotal computes quantity × unit price rounded to cents.
func LineTotal(quantity, unitPrice float64) float64 {
	f, _ := decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(unitPrice)).
		Round(2).Float64()
	return f
}

// ComputeTotals derives all monetary figures of an estimate from its line
// items and financial settings.
//
//   - subtotal = Σ line totals
//   - discount: percentage of subtotal, or a flat amount capped at subtotal
//   - tax applies to the discounted subtotal
//   - deposit: percentage of total, a flat amount, or zero
//
// All results are rounded to two decimals.
func ComputeTotals(in TotalsInput) Totals {
	subtotal := decimal.Zero
	for _, li := range in.LineItems {
		subtotal = subtotal.Add(decimal.NewFromFloat(li.Total))
	}
	subtotal = subtotal.Round(2)

	discount := decimal.Zero
	switch in.DiscountType {
	case entities.DiscountTypePercentage:
		discount = subtotal.Mul(decimal.NewFromFloat(in.Discount)).Div(oneHundred)
	case entities.DiscountTypeAmount:
		discount = decimal.NewFromFloat(in.Discount)
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
	}
	discount = discount.Round(2)

	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(decimal.NewFromFloat(in.TaxRate)).Div(oneHundred).Round(2)
	total := taxable.Add(tax).Round(2)

	deposit := decimal.Zero
	switch in.DepositType {
	case entities.DepositTypePercentage:
		deposit = total.Mul(decimal.NewFromFloat(in.DepositValue)).Div(oneHundred)
	case entities.DepositTypeAmount:
		deposit = decimal.NewFromFloat(in.DepositValue)
	}
	deposit = deposit.Round(2)

	out := Totals{}
	out.Subtotal, _ = subtotal.Float64()
	out.DiscountAmount, _ = discount.Float64()
	out.TaxableAmount, _ = taxable.Float64()
	out.TaxAmount, _ = tax.Float64()
	out.Total, _ = total.Float64()
	out.DepositAmount, _ = deposit.Float64()
	return out
}

// TotalsOf is ComputeTotals over a live aggregate.
func TotalsOf(e *entities.Estimate) Totals {
	return ComputeTotals(TotalsInput{
		LineItems:    e.LineItems,
		Discount:     e.Discount,
		DiscountType: e.DiscountType,
		TaxRate:      e.TaxRate,
		DepositType:  e.DepositType,
		DepositValue: e.DepositValue,
	})
}
