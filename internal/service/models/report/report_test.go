package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementsDecode(t *testing.T) {
	body := `{
		"Online Delivery": {"total_orders": 4, "total_sales": 1200.5, "commission_amount": 120.05},
		"Credit Card": {"total_orders": 2, "total_sales": 300, "commission_amount": 15}
	}`

	var s Settlements
	require.NoError(t, json.Unmarshal([]byte(body), &s))

	online := s.Channel(ChannelOnlineDelivery)
	assert.Equal(t, 4, online.TotalOrders)
	assert.True(t, decimal.RequireFromString("1200.5").Equal(online.TotalSales))
	assert.Zero(t, s.Channel("Cash").TotalOrders)
}

func TestHourlyChart(t *testing.T) {
	rows := []CompanySales{
		{CreatedAt: "2025-03-01T09:15:00", Sales: decimal.NewFromInt(100)},
		{CreatedAt: "2025-03-01T12:00:00Z", Sales: decimal.NewFromInt(50)},
		{CreatedAt: "2025-03-01T18:30:00+05:30", Sales: decimal.NewFromInt(70)},
		{CreatedAt: "garbage", Sales: decimal.NewFromInt(1)},
	}

	points := HourlyChart(rows)
	require.Len(t, points, 3)
	assert.Equal(t, "9AM", points[0].Name)
	assert.Equal(t, "12PM", points[1].Name)
	assert.Equal(t, "1PM", points[2].Name)
}

func TestHourLabelMidnight(t *testing.T) {
	assert.Equal(t, "12AM", HourLabel(time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC)))
}

func TestByWaiter(t *testing.T) {
	var allocations []Allocation
	body := `[
		{"id": 1, "table_no": {"tables": ["T1", "T2"]}, "waiter_id": "w2", "waiter_name": "Zoe"},
		{"id": 2, "table_no": {"tables": ["T3"]}, "waiter_id": "w1", "waiter_name": "Adam"},
		{"id": 3, "table_no": {"tables": ["T4"]}, "waiter_id": "w2", "waiter_name": "Zoe"}
	]`
	require.NoError(t, json.Unmarshal([]byte(body), &allocations))

	got := ByWaiter(allocations)
	require.Len(t, got, 2)
	assert.Equal(t, WaiterTables{WaiterName: "Adam", Tables: []string{"T3"}}, got[0])
	assert.Equal(t, WaiterTables{WaiterName: "Zoe", Tables: []string{"T1", "T2", "T4"}}, got[1])
}
