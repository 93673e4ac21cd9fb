package menu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/corray333/backend-labs/cafe/internal/service/models/pricing"
	"github.com/shopspring/decimal"
)

// CategorySpecials marks items shown in the "Today's Specials" section.
const CategorySpecials = "specials"

// DefaultVariant is picked when a caller names no variant and the item has several.
const DefaultVariant = "Regular"

var (
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrVariantRequired = errors.New("variant is required")
	ErrInvalidItem     = errors.New("invalid menu item")
)

// Item represents a menu item as served by the café API.
type Item struct {
	ID              string                     `json:"id"`
	SKU             string                     `json:"sku"`
	Name            string                     `json:"name"`
	Category        string                     `json:"category"`
	SubCategory     string                     `json:"sub_category,omitempty"`
	Description     string                     `json:"description,omitempty"`
	Variations      map[string]decimal.Decimal `json:"variations"`
	TaxPercentage   decimal.Decimal            `json:"tax_percentage"`
	PackagingCharge decimal.Decimal            `json:"packaging_charge"`
	PreparationTime int                        `json:"preparation_time,omitempty"`
	ImageURL        string                     `json:"image_url,omitempty"`
	CreatedAt       string                     `json:"created_at,omitempty"`
	TotalOrdered    int                        `json:"total_ordered,omitempty"`
}

// item mirrors Item without its methods so the object form can be decoded with the default rules.
type item Item

// objectItem tolerates nulls the café API sends for optional text fields.
type objectItem struct {
	item
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// UnmarshalJSON accepts both the object form and the positional array form
// [id, name, category, sub_category, tax, packaging, sku, variations, created_at, description, image_url].
func (i *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return i.unmarshalPositional(data)
	}

	var obj objectItem
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*i = Item(obj.item)
	if obj.Description != nil {
		i.Description = *obj.Description
	}
	if obj.ImageURL != nil {
		i.ImageURL = *obj.ImageURL
	}

	return nil
}

func (i *Item) unmarshalPositional(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 8 {
		return fmt.Errorf("positional menu item has %d fields, want at least 8", len(fields))
	}

	get := func(idx int) json.RawMessage {
		if idx < len(fields) {
			return fields[idx]
		}
		return nil
	}

	out := Item{
		ID:          rawText(get(0)),
		Name:        rawText(get(1)),
		Category:    rawText(get(2)),
		SubCategory: rawText(get(3)),
		SKU:         rawText(get(6)),
		CreatedAt:   rawText(get(8)),
		Description: rawText(get(9)),
		ImageURL:    rawText(get(10)),
	}
	if err := out.TaxPercentage.UnmarshalJSON(get(4)); err != nil {
		return fmt.Errorf("tax percentage: %w", err)
	}
	if err := out.PackagingCharge.UnmarshalJSON(get(5)); err != nil {
		return fmt.Errorf("packaging charge: %w", err)
	}
	if raw := get(7); len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &out.Variations); err != nil {
			return fmt.Errorf("variations: %w", err)
		}
	}

	*i = out

	return nil
}

// rawText renders a JSON scalar as text; strings are unquoted, null is empty.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// Key identifies the item; the café API sometimes omits the id and only sends the SKU.
func (i Item) Key() string {
	if i.ID != "" {
		return i.ID
	}

	return i.SKU
}

// VariantNames returns the variant labels in a stable order.
func (i Item) VariantNames() []string {
	names := make([]string, 0, len(i.Variations))
	for name := range i.Variations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ResolveVariant validates a requested variant. An empty request resolves to the only
// variant, or to DefaultVariant when the item offers it.
func (i Item) ResolveVariant(variant string) (string, error) {
	if variant != "" {
		if _, ok := i.Variations[variant]; !ok {
			return "", fmt.Errorf("%w: %q for item %s", ErrUnknownVariant, variant, i.Key())
		}
		return variant, nil
	}

	if len(i.Variations) == 1 {
		return i.VariantNames()[0], nil
	}
	if _, ok := i.Variations[DefaultVariant]; ok {
		return DefaultVariant, nil
	}

	return "", fmt.Errorf("%w for item %s", ErrVariantRequired, i.Key())
}

// Price looks up the unit price of a variant.
func (i Item) Price(variant string) (decimal.Decimal, bool) {
	p, ok := i.Variations[variant]
	return p, ok
}

// DisplayPrice is the per-unit price with tax and packaging, as shown on a menu card.
func (i Item) DisplayPrice(variant string) (decimal.Decimal, bool) {
	p, ok := i.Price(variant)
	if !ok {
		return decimal.Zero, false
	}

	return pricing.UnitDisplayPrice(p, i.TaxPercentage, i.PackagingCharge), true
}

// IsSpecial reports whether the item belongs to today's specials.
func (i Item) IsSpecial() bool {
	return i.Category == CategorySpecials
}

// Matches reports whether the item matches a free-text query on name or description.
func (i Item) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Description), q)
}

// NewItem is the payload for adding an item; the SKU is assigned by the café API.
type NewItem struct {
	Name            string                     `json:"name"`
	Category        string                     `json:"category"`
	SubCategory     string                     `json:"sub_category"`
	TaxPercentage   decimal.Decimal            `json:"tax_percentage"`
	PackagingCharge decimal.Decimal            `json:"packaging_charge"`
	Description     string                     `json:"description"`
	Variations      map[string]decimal.Decimal `json:"variations"`
	ImageURL        string                     `json:"image_url"`
}

// Validate checks the fields the café API requires.
func (n NewItem) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if strings.TrimSpace(n.SubCategory) == "" {
		return fmt.Errorf("%w: sub category is required", ErrInvalidItem)
	}
	if len(n.Variations) == 0 {
		return fmt.Errorf("%w: at least one variation is required", ErrInvalidItem)
	}
	for name, price := range n.Variations {
		if price.IsNegative() {
			return fmt.Errorf("%w: variation %q has a negative price", ErrInvalidItem, name)
		}
	}

	return nil
}

// Edit is a partial update; nil fields are left untouched.
type Edit struct {
	SKU             string                     `json:"sku"`
	Name            *string                    `json:"name,omitempty"`
	Category        *string                    `json:"category,omitempty"`
	SubCategory     *string                    `json:"sub_category,omitempty"`
	TaxPercentage   *decimal.Decimal           `json:"tax_percentage,omitempty"`
	PackagingCharge *decimal.Decimal           `json:"packaging_charge,omitempty"`
	Description     *string                    `json:"description,omitempty"`
	Variations      map[string]decimal.Decimal `json:"variations,omitempty"`
	ImageURL        *string                    `json:"image_url,omitempty"`
}

// Empty reports whether the edit carries no changes.
func (e Edit) Empty() bool {
	return e.Name == nil && e.Category == nil && e.SubCategory == nil &&
		e.TaxPercentage == nil && e.PackagingCharge == nil && e.Description == nil &&
		e.Variations == nil && e.ImageURL == nil
}
