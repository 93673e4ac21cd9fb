package cart

import (
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/pricing"
	"github.com/shopspring/decimal"
)

// Line is a menu item in the cart with the chosen variant and quantity.
// Its price is always read from the item's variant map, never stored.
type Line struct {
	Item     menu.Item `json:"item"`
	Variant  string    `json:"variant"`
	Quantity int       `json:"quantity"`
}

// UnitPrice returns the variant price, zero when the variant is unknown.
// Carts are priced only after Refresh has set such lines apart.
func (l Line) UnitPrice() decimal.Decimal {
	p, _ := l.Item.Price(l.Variant)
	return p
}

// Is reports whether the line holds the item with the given id or SKU.
func (l Line) Is(key string) bool {
	return l.Item.Key() == key || (l.Item.SKU != "" && l.Item.SKU == key)
}

// PricingLine converts the line for the pricing calculator.
func (l Line) PricingLine() pricing.Line {
	return pricing.Line{
		UnitPrice:       l.UnitPrice(),
		Quantity:        l.Quantity,
		TaxPercentage:   l.Item.TaxPercentage,
		PackagingCharge: l.Item.PackagingCharge,
	}
}

// Cart is an ordered list of lines, unique by (item id, variant).
type Cart []Line

// Add merges quantity into the (item, variant) line or appends a new line.
// Non-positive quantities are ignored; the returned flag reports a change.
func (c Cart) Add(item menu.Item, quantity int, variant string) (Cart, bool) {
	if quantity <= 0 {
		return c, false
	}

	out := c.clone()
	for i := range out {
		if out[i].Item.Key() == item.Key() && out[i].Variant == variant {
			out[i].Quantity += quantity
			out[i].Item = item
			return out, true
		}
	}

	return append(out, Line{Item: item, Variant: variant, Quantity: quantity}), true
}

// Remove drops every line of the item regardless of variant.
func (c Cart) Remove(itemID string) (Cart, bool) {
	out := make(Cart, 0, len(c))
	for _, l := range c {
		if !l.Is(itemID) {
			out = append(out, l)
		}
	}

	return out, len(out) != len(c)
}

// UpdateQuantity sets the quantity on the item's lines. Quantities below one are ignored.
func (c Cart) UpdateQuantity(itemID string, quantity int) (Cart, bool) {
	if quantity < 1 {
		return c, false
	}

	out := c.clone()
	changed := false
	for i := range out {
		if out[i].Is(itemID) && out[i].Quantity != quantity {
			out[i].Quantity = quantity
			changed = true
		}
	}

	return out, changed
}

// Refresh replaces the embedded menu items with the current catalog versions.
// Lines whose item or variant is no longer on the menu are returned apart and must not be priced.
func (c Cart) Refresh(lookup func(id string) (menu.Item, bool)) (available, unavailable Cart) {
	available = make(Cart, 0, len(c))
	for _, l := range c {
		item, ok := lookup(l.Item.Key())
		if !ok {
			unavailable = append(unavailable, l)
			continue
		}
		if _, ok := item.Price(l.Variant); !ok {
			unavailable = append(unavailable, l)
			continue
		}
		l.Item = item
		available = append(available, l)
	}

	return available, unavailable
}

// Names lists the item names of the lines, once each.
func (c Cart) Names() []string {
	seen := make(map[string]struct{}, len(c))
	names := make([]string, 0, len(c))
	for _, l := range c {
		if _, ok := seen[l.Item.Name]; ok {
			continue
		}
		seen[l.Item.Name] = struct{}{}
		names = append(names, l.Item.Name)
	}

	return names
}

// PricingLines converts the cart for the pricing calculator.
func (c Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, len(c))
	for i, l := range c {
		lines[i] = l.PricingLine()
	}

	return lines
}

// Summary prices the cart.
func (c Cart) Summary() pricing.Summary {
	return pricing.Calculate(c.PricingLines())
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)

	return out
}
