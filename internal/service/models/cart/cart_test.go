package cart

import (
	"testing"

	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var latte = menu.Item{
	ID:   "latte",
	Name: "Latte",
	Variations: map[string]decimal.Decimal{
		"Regular": decimal.NewFromInt(100),
		"Large":   decimal.NewFromInt(150),
	},
	TaxPercentage:   decimal.NewFromInt(5),
	PackagingCharge: decimal.NewFromInt(10),
}

func TestAdd_MergesSameVariant(t *testing.T) {
	var c Cart
	c, changed := c.Add(latte, 2, "Regular")
	require.True(t, changed)
	c, changed = c.Add(latte, 2, "Regular")
	require.True(t, changed)

	require.Len(t, c, 1)
	assert.Equal(t, 4, c[0].Quantity)
}

func TestAdd_DifferentVariantIsNewLine(t *testing.T) {
	var c Cart
	c, _ = c.Add(latte, 1, "Regular")
	c, _ = c.Add(latte, 1, "Large")

	require.Len(t, c, 2)
	assert.Equal(t, "Large", c[1].Variant)
}

func TestAdd_RejectsNonPositive(t *testing.T) {
	c := Cart{{Item: latte, Variant: "Regular", Quantity: 1}}

	for _, q := range []int{0, -1, -10} {
		got, changed := c.Add(latte, q, "Regular")
		assert.False(t, changed)
		assert.Equal(t, c, got)
	}
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	c := Cart{{Item: latte, Variant: "Regular", Quantity: 1}}
	_, _ = c.Add(latte, 3, "Regular")

	assert.Equal(t, 1, c[0].Quantity)
}

func TestRemove_IsVariantInsensitive(t *testing.T) {
	espresso := menu.Item{ID: "espresso", Variations: map[string]decimal.Decimal{"Single": decimal.NewFromInt(80)}}
	c := Cart{
		{Item: latte, Variant: "Regular", Quantity: 1},
		{Item: espresso, Variant: "Single", Quantity: 1},
		{Item: latte, Variant: "Large", Quantity: 2},
	}

	got, changed := c.Remove("latte")
	require.True(t, changed)
	require.Len(t, got, 1)
	assert.Equal(t, "espresso", got[0].Item.ID)

	_, changed = got.Remove("latte")
	assert.False(t, changed)
}

func TestUpdateQuantity(t *testing.T) {
	c := Cart{{Item: latte, Variant: "Regular", Quantity: 2}}

	for _, q := range []int{0, -1} {
		got, changed := c.UpdateQuantity("latte", q)
		assert.False(t, changed)
		assert.Equal(t, c, got)
	}

	got, changed := c.UpdateQuantity("latte", 5)
	require.True(t, changed)
	assert.Equal(t, 5, got[0].Quantity)
	assert.Equal(t, 2, c[0].Quantity)

	_, changed = c.UpdateQuantity("missing", 5)
	assert.False(t, changed)
}

func TestSummary_UsesVariantPrice(t *testing.T) {
	c := Cart{{Item: latte, Variant: "Regular", Quantity: 2}}
	s := c.Summary()

	assert.True(t, decimal.NewFromInt(230).Equal(s.Total))
	assert.Equal(t, int64(23), s.Points)

	c, _ = c.Add(latte, 1, "Large")
	s = c.Summary()
	// 200 + 150 subtotal, 17.5 tax, 30 packaging
	assert.True(t, decimal.RequireFromString("397.5").Equal(s.Total))
	assert.Equal(t, int64(39), s.Points)
}

func TestRefresh_FollowsMenuPrice(t *testing.T) {
	c := Cart{{Item: latte, Variant: "Regular", Quantity: 1}}

	repriced := latte
	repriced.Variations = map[string]decimal.Decimal{"Regular": decimal.NewFromInt(120)}

	got, gone := c.Refresh(func(id string) (menu.Item, bool) {
		if id == "latte" {
			return repriced, true
		}
		return menu.Item{}, false
	})

	assert.Empty(t, gone)
	assert.True(t, decimal.NewFromInt(120).Equal(got[0].UnitPrice()))
	assert.True(t, decimal.NewFromInt(100).Equal(c[0].UnitPrice()))
}

func TestRefresh_SetsApartItemsOffTheMenu(t *testing.T) {
	mocha := menu.Item{ID: "mocha", Name: "Mocha", Variations: map[string]decimal.Decimal{"Regular": decimal.NewFromInt(90)}}
	c := Cart{
		{Item: latte, Variant: "Large", Quantity: 1},
		{Item: mocha, Variant: "Regular", Quantity: 2},
	}

	regularOnly := latte
	regularOnly.Variations = map[string]decimal.Decimal{"Regular": decimal.NewFromInt(100)}

	got, gone := c.Refresh(func(id string) (menu.Item, bool) {
		if id == "latte" {
			return regularOnly, true
		}
		return menu.Item{}, false
	})

	assert.Empty(t, got)
	require.Len(t, gone, 2)
	assert.Equal(t, []string{"Latte", "Mocha"}, gone.Names())
	assert.True(t, got.Summary().Total.IsZero())
}
