package order

import (
	"time"

	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/currency"
	"github.com/corray333/backend-labs/cafe/internal/service/models/pricing"
	"github.com/shopspring/decimal"
)

// Order represents a placed customer order: a frozen snapshot of the cart at checkout.
type Order struct {
	ID        string            `json:"id"`
	SessionID string            `json:"sessionId"`
	Lines     []Line            `json:"lines"`
	Summary   pricing.Summary   `json:"summary"`
	Currency  currency.Currency `json:"currency"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Line is an ordered position with its price frozen at checkout.
type Line struct {
	ItemID          string          `json:"itemId"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Variant         string          `json:"variant"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxPercentage   decimal.Decimal `json:"taxPercentage"`
	PackagingCharge decimal.Decimal `json:"packagingCharge"`
}

// FromCart snapshots the cart lines into a new order.
func FromCart(id, sessionID string, c cart.Cart, now time.Time) Order {
	lines := make([]Line, len(c))
	for i, l := range c {
		lines[i] = Line{
			ItemID:          l.Item.Key(),
			SKU:             l.Item.SKU,
			Name:            l.Item.Name,
			Variant:         l.Variant,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice(),
			TaxPercentage:   l.Item.TaxPercentage,
			PackagingCharge: l.Item.PackagingCharge,
		}
	}

	return Order{
		ID:        id,
		SessionID: sessionID,
		Lines:     lines,
		Summary:   c.Summary(),
		Currency:  currency.Default,
		CreatedAt: now,
	}
}

// Reprice recomputes the summary from the frozen lines.
func (o Order) Reprice() pricing.Summary {
	lines := make([]pricing.Line, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = pricing.Line{
			UnitPrice:       l.UnitPrice,
			Quantity:        l.Quantity,
			TaxPercentage:   l.TaxPercentage,
			PackagingCharge: l.PackagingCharge,
		}
	}

	return pricing.Calculate(lines)
}
