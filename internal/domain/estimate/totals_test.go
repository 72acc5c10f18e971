package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contractor_crm/internal/domain/entities"
)

func item(desc string, qty, price float64) entities.LineItem {
	return entities.LineItem{
		ID:          desc,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   price,
		Total:       LineTotal(qty, price),
		Source:      entities.LineItemSourceProduct,
	}
}

func TestComputeTotals_PercentageDiscountWithTax(t *testing.T) {
	got := ComputeTotals(TotalsInput{
		LineItems:    []entities.LineItem{item("framing", 2, 100), item("nails", 1, 50)},
		Discount:     10,
		DiscountType: entities.DiscountTypePercentage,
		TaxRate:      8,
	})

	require.Equal(t, 250.0, got.Subtotal)
	require.Equal(t, 25.0, got.DiscountAmount)
	require.Equal(t, 225.0, got.TaxableAmount)
	require.Equal(t, 18.0, got.TaxAmount)
	require.Equal(t, 243.0, got.Total)
	require.Equal(t, 0.0, got.DepositAmount)
}

func TestComputeTotals_AmountDiscountCappedAtSubtotal(t *testing.T) {
	got := ComputeTotals(TotalsInput{
		LineItems:    []entities.LineItem{item("labor", 1, 80)},
		Discount:     500,
		DiscountType: entities.DiscountTypeAmount,
		TaxRate:      10,
	})

	require.Equal(t, 80.0, got.Subtotal)
	require.Equal(t, 80.0, got.DiscountAmount)
	require.Equal(t, 0.0, got.TaxableAmount)
	require.Equal(t, 0.0, got.TaxAmount)
	require.Equal(t, 0.0, got.Total)
}

func TestComputeTotals_Deposits(t *testing.T) {
	base := TotalsInput{
		LineItems: []entities.LineItem{item("roofing", 4, 250)},
		TaxRate:   0,
	}

	t.Run("none", func(t *testing.T) {
		in := base
		in.DepositType = entities.DepositTypeNone
		require.Equal(t, 0.0, ComputeTotals(in).DepositAmount)
	})

	t.Run("percentage of total", func(t *testing.T) {
		in := base
		in.DepositType = entities.DepositTypePercentage
		in.DepositValue = 25
		require.Equal(t, 250.0, ComputeTotals(in).DepositAmount)
	})

	t.Run("flat amount", func(t *testing.T) {
		in := base
		in.DepositType = entities.DepositTypeAmount
		in.DepositValue = 300
		require.Equal(t, 300.0, ComputeTotals(in).DepositAmount)
	})
}

func TestComputeTotals_RoundsToCents(t *testing.T) {
	got := ComputeTotals(TotalsInput{
		LineItems:    []entities.LineItem{item("trim", 3, 33.33)},
		Discount:     7,
		DiscountType: entities.DiscountTypePercentage,
		TaxRate:      8.25,
	})

	// 99.99 - 7.00 = 92.99; 92.99 * 8.25% = 7.671675 -> 7.67
	require.Equal(t, 99.99, got.Subtotal)
	require.Equal(t, 7.0, got.DiscountAmount)
	require.Equal(t, 7.67, got.TaxAmount)
	require.Equal(t, 100.66, got.Total)
}

func TestComputeTotals_EmptyLedger(t *testing.T) {
	got := ComputeTotals(TotalsInput{
		Discount:     10,
		DiscountType: entities.DiscountTypePercentage,
		TaxRate:      8,
	})
	require.Equal(t, Totals{}, got)
}

func TestComputeTotals_SubtotalMatchesLiveItems(t *testing.T) {
	e := &entities.Estimate{
		LineItems: []entities.LineItem{item("a", 2, 10.05), item("b", 3, 7.77)},
	}

	// The stored subtotal must always equal the sum of live line totals,
	// whatever sequence of ledger mutations produced them.
	sum := 0.0
	for _, li := range e.LineItems {
		sum += li.Total
	}
	require.InDelta(t, sum, TotalsOf(e).Subtotal, 0.001)
}
