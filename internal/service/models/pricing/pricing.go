// Package pricing computes cart and order totals.
package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	hundred     = decimal.NewFromInt(100)
	pointsEvery = decimal.NewFromInt(10)
)

// Line is a single priced position: a unit price taken once per unit,
// tax as a percentage of price×quantity and a per-unit packaging charge.
type Line struct {
	UnitPrice       decimal.Decimal
	Quantity        int
	TaxPercentage   decimal.Decimal
	PackagingCharge decimal.Decimal
}

// Summary is the priced result of a set of lines.
type Summary struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Packaging decimal.Decimal `json:"packaging"`
	Total     decimal.Decimal `json:"total"`
	Points    int64           `json:"points"`
}

// Calculate prices the lines. It has no side effects and an empty input yields a zero Summary.
func Calculate(lines []Line) Summary {
	subtotal := decimal.Zero
	tax := decimal.Zero
	packaging := decimal.Zero

	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		base := l.UnitPrice.Mul(qty)

		subtotal = subtotal.Add(base)
		tax = tax.Add(base.Mul(l.TaxPercentage).Div(hundred))
		packaging = packaging.Add(l.PackagingCharge.Mul(qty))
	}

	total := subtotal.Add(tax).Add(packaging)

	return Summary{
		Subtotal:  subtotal,
		Tax:       tax,
		Packaging: packaging,
		Total:     total,
		Points:    Points(total),
	}
}

// Points returns the loyalty points earned for a spend: one per 10 units, truncated toward zero.
func Points(total decimal.Decimal) int64 {
	return total.Div(pointsEvery).Truncate(0).IntPart()
}

// UnitDisplayPrice is the price shown on a menu card for one unit of a variant.
func UnitDisplayPrice(price, taxPercentage, packagingCharge decimal.Decimal) decimal.Decimal {
	return price.Add(price.Mul(taxPercentage).Div(hundred)).Add(packagingCharge)
}
