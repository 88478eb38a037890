package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateItemsTwoRows(t *testing.T) {
	items, totals := NewTaxService().CalculateItems([]ItemInput{
		{Description: "Widget", Quantity: d("2"), UnitPrice: d("100"), TaxRate: d("18")},
		{Description: "Gadget", Quantity: d("1"), UnitPrice: d("50"), TaxRate: d("18")},
	})

	require.Len(t, items, 2)

	assert.Equal(t, "200.00", items[0].Taxable.StringFixed(2))
	assert.Equal(t, "36.00", items[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "236.00", items[0].Total.StringFixed(2))

	assert.Equal(t, "50.00", items[1].Taxable.StringFixed(2))
	assert.Equal(t, "9.00", items[1].TaxAmount.StringFixed(2))
	assert.Equal(t, "59.00", items[1].Total.StringFixed(2))

	assert.Equal(t, "250.00", totals.SubTotal.StringFixed(2))
	assert.Equal(t, "45.00", totals.TotalTax.StringFixed(2))
	assert.Equal(t, "295.00", totals.GrandTotal.StringFixed(2))
}

func TestCalculateItemsRoundsOncePerValue(t *testing.T) {
	// 3 * 9.99 = 29.97; 29.97 * 17% = 5.0949 -> 5.09
	items, _ := NewTaxService().CalculateItems([]ItemInput{
		{Quantity: d("3"), UnitPrice: d("9.99"), TaxRate: d("17")},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "29.97", items[0].Taxable.StringFixed(2))
	assert.Equal(t, "5.09", items[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "35.06", items[0].Total.StringFixed(2))
}

func TestCalculateItemsHalfAwayFromZero(t *testing.T) {
	// 1 * 0.50 * 25% = 0.125, which must round up to 0.13
	items, _ := NewTaxService().CalculateItems([]ItemInput{
		{Quantity: d("1"), UnitPrice: d("0.50"), TaxRate: d("25")},
	})

	assert.Equal(t, "0.13", items[0].TaxAmount.StringFixed(2))

	// and -0.125 must round away to -0.13
	items, _ = NewTaxService().CalculateItems([]ItemInput{
		{Quantity: d("-1"), UnitPrice: d("0.50"), TaxRate: d("25")},
	})

	assert.Equal(t, "-0.13", items[0].TaxAmount.StringFixed(2))
}

func TestCalculateItemsZeroQuantityOrPrice(t *testing.T) {
	items, totals := NewTaxService().CalculateItems([]ItemInput{
		{Description: "Service", Quantity: d("0"), UnitPrice: d("0"), TaxRate: d("18")},
	})

	require.Len(t, items, 1)
	assert.True(t, items[0].Taxable.IsZero())
	assert.True(t, items[0].TaxAmount.IsZero())
	assert.True(t, items[0].Total.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestCalculateItemsNegativeValuesPropagate(t *testing.T) {
	items, totals := NewTaxService().CalculateItems([]ItemInput{
		{Quantity: d("-1"), UnitPrice: d("100"), TaxRate: d("10")},
	})

	assert.Equal(t, "-100.00", items[0].Taxable.StringFixed(2))
	assert.Equal(t, "-10.00", items[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "-110.00", items[0].Total.StringFixed(2))
	assert.Equal(t, "-110.00", totals.GrandTotal.StringFixed(2))
}

func TestCalculateItemsTotalTaxSumsRoundedAmounts(t *testing.T) {
	// Each row's tax is 0.125 -> rounded to 0.13 before summing, so the
	// total tax is 0.26, not round2(0.25).
	_, totals := NewTaxService().CalculateItems([]ItemInput{
		{Quantity: d("1"), UnitPrice: d("0.50"), TaxRate: d("25")},
		{Quantity: d("1"), UnitPrice: d("0.50"), TaxRate: d("25")},
	})

	assert.Equal(t, "0.26", totals.TotalTax.StringFixed(2))
	assert.Equal(t, "1.26", totals.GrandTotal.StringFixed(2))
}

func TestCalculateItemsEmptyInput(t *testing.T) {
	items, totals := NewTaxService().CalculateItems(nil)

	assert.Empty(t, items)
	assert.True(t, totals.SubTotal.IsZero())
	assert.True(t, totals.TotalTax.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
