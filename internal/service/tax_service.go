package service

import (
	"github.com/shopspring/decimal"

	"invoicegen/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// Totals holds the invoice-level aggregates.
type Totals struct {
	SubTotal   decimal.Decimal
	TotalTax   decimal.Decimal
	GrandTotal decimal.Decimal
}

// --- Interface ---

type TaxService interface {
	CalculateItems(inputs []ItemInput) ([]model.LineItem, Totals)
}

type taxService struct{}

func NewTaxService() TaxService {
	return &taxService{}
}

// --- Implementation ---

// CalculateItems computes the derived fields for every row and the invoice
// aggregates. Taxable stays at full precision; tax amount and row total are
// rounded to 2 places exactly once, immediately after computation, and never
// re-rounded. The subtotal sums the unrounded taxable values while the tax
// total sums the already-rounded tax amounts, so repeated summation cannot
// drift beyond one rounding step.
//
// Zero or negative quantities and prices propagate arithmetically; the
// calculation is total over its input domain and never returns an error.
func (s *taxService) CalculateItems(inputs []ItemInput) ([]model.LineItem, Totals) {
	items := make([]model.LineItem, 0, len(inputs))
	subTotal := decimal.Zero
	totalTax := decimal.Zero

	for _, in := range inputs {
		taxable := in.Quantity.Mul(in.UnitPrice)
		taxAmount := round2(taxable.Mul(in.TaxRate).Div(oneHundred))
		total := round2(taxable.Add(taxAmount))

		items = append(items, model.LineItem{
			Description: in.Description,
			HSN:         in.HSN,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TaxRate:     in.TaxRate,
			Taxable:     taxable,
			TaxAmount:   taxAmount,
			Total:       total,
		})

		subTotal = subTotal.Add(taxable)
		totalTax = totalTax.Add(taxAmount)
	}

	return items, Totals{
		SubTotal:   subTotal,
		TotalTax:   totalTax,
		GrandTotal: round2(subTotal.Add(totalTax)),
	}
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
