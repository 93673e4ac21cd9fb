package order

import (
	"testing"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/currency"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCart_FreezesPrices(t *testing.T) {
	item := menu.Item{
		ID:              "latte",
		SKU:             "COF001",
		Name:            "Latte",
		Variations:      map[string]decimal.Decimal{"Regular": decimal.NewFromInt(100)},
		TaxPercentage:   decimal.NewFromInt(5),
		PackagingCharge: decimal.NewFromInt(10),
	}
	c := cart.Cart{{Item: item, Variant: "Regular", Quantity: 2}}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	o := FromCart("o-1", "s-1", c, now)

	require.Len(t, o.Lines, 1)
	assert.Equal(t, "COF001", o.Lines[0].SKU)
	assert.True(t, decimal.NewFromInt(100).Equal(o.Lines[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(230).Equal(o.Summary.Total))
	assert.Equal(t, int64(23), o.Summary.Points)
	assert.Equal(t, currency.CurrencyINR, o.Currency)
	assert.Equal(t, now, o.CreatedAt)

	item.Variations["Regular"] = decimal.NewFromInt(999)
	assert.True(t, decimal.NewFromInt(100).Equal(o.Lines[0].UnitPrice))
	assert.True(t, o.Summary.Total.Equal(o.Reprice().Total))
}
