// Package report holds the admin dashboard data: settlement totals, company sales and waiter allocations.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/service/models/kitchen"
	"github.com/shopspring/decimal"
)

const (
	ChannelOnlineDelivery = "Online Delivery"
	ChannelCreditCard     = "Credit Card"
)

// Settlement is the per-channel aggregate returned by the settlement master endpoint.
type Settlement struct {
	TotalOrders      int             `json:"total_orders"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// Settlements is keyed by channel name.
type Settlements map[string]Settlement

// Channel returns the settlement for a channel, zero when the channel is absent.
func (s Settlements) Channel(name string) Settlement {
	return s[name]
}

// CompanySales is one row of the company sales series.
type CompanySales struct {
	CreatedAt string          `json:"created_at"`
	Sales     decimal.Decimal `json:"sales"`
}

// ChartPoint is a labelled value for the sales chart.
type ChartPoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// HourlyChart labels each sales row with its UTC hour ("9AM", "12PM").
// Rows with unparseable timestamps are skipped.
func HourlyChart(rows []CompanySales) []ChartPoint {
	points := make([]ChartPoint, 0, len(rows))
	for _, r := range rows {
		t, err := kitchen.ParseTime(r.CreatedAt)
		if err != nil {
			continue
		}
		points = append(points, ChartPoint{Name: HourLabel(t), Value: r.Sales})
	}

	return points
}

// HourLabel formats the UTC hour on a 12 hour clock.
func HourLabel(t time.Time) string {
	return t.UTC().Format("3PM")
}

// Tables is the JSON document stored in an allocation's table_no column.
type Tables struct {
	Tables []string `json:"tables"`
}

// Allocation assigns tables to a waiter.
type Allocation struct {
	ID         int64  `json:"id"`
	CreatedAt  string `json:"created_at"`
	TableNo    Tables `json:"table_no"`
	WaiterID   string `json:"waiter_id"`
	WaiterName string `json:"waiter_name"`
}

// WaiterTables collects the tables of every waiter, sorted by waiter name.
type WaiterTables struct {
	WaiterName string   `json:"waiter_name"`
	Tables     []string `json:"tables"`
}

// ByWaiter merges allocations of the same waiter.
func ByWaiter(allocations []Allocation) []WaiterTables {
	index := make(map[string]int)
	var out []WaiterTables
	for _, a := range allocations {
		key := a.WaiterID
		if key == "" {
			key = fmt.Sprintf("name:%s", a.WaiterName)
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, WaiterTables{WaiterName: a.WaiterName})
		}
		out[i].Tables = append(out[i].Tables, a.TableNo.Tables...)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].WaiterName < out[j].WaiterName })

	return out
}
