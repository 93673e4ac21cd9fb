package kitchen

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/service/models/status"
	"github.com/shopspring/decimal"
)

// NoTable is shown for orders without an assigned table.
const NoTable = "N/A"

// Item represents an order item on the kitchen board with its own fulfillment status.
type Item struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Status   status.Status   `json:"status"`
}

// Order represents an order as returned by the order management endpoint.
type Order struct {
	OrderID        int64           `json:"order_id"`
	ChannelType    string          `json:"channel_type"`
	AssignedTables []string        `json:"assigned_tables"`
	Price          decimal.Decimal `json:"price"`
	Items          []Item          `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTime parses the timestamps the café API emits, with or without a zone.
// Zoneless values are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time format %q", s)
}

// UnmarshalJSON decodes an order; items start out Pending unless the payload says otherwise.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		alias
		CreatedAt string `json:"created_at"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*o = Order(aux.alias)
	if aux.CreatedAt != "" {
		t, err := ParseTime(aux.CreatedAt)
		if err != nil {
			return err
		}
		o.CreatedAt = t
	}
	for i := range o.Items {
		if o.Items[i].Status == "" {
			o.Items[i].Status = status.StatusPending
		}
	}

	return nil
}

// Status is the overall order status, derived from the items on every call.
func (o Order) Status() status.Status {
	statuses := make([]status.Status, len(o.Items))
	for i, it := range o.Items {
		statuses[i] = it.Status
	}

	return status.Aggregate(statuses...)
}

// AssignedTable renders the assigned tables for display.
func (o Order) AssignedTable() string {
	if len(o.AssignedTables) == 0 {
		return NoTable
	}

	return strings.Join(o.AssignedTables, ", ")
}

// AllDelivered reports whether every item has been delivered.
func (o Order) AllDelivered() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, it := range o.Items {
		if it.Status != status.StatusDelivered {
			return false
		}
	}

	return true
}

// PreparingMinutes is the whole number of minutes since the order was created.
func (o Order) PreparingMinutes(now time.Time) int {
	d := now.Sub(o.CreatedAt)
	if d < 0 {
		d = -d
	}

	return int(d / time.Minute)
}

// WithItemStatus returns a copy where items matching the predicate carry the new status.
func (o Order) WithItemStatus(match func(Item) bool, s status.Status) Order {
	out := o
	out.Items = slices.Clone(o.Items)
	for i := range out.Items {
		if match(out.Items[i]) {
			out.Items[i].Status = s
		}
	}

	return out
}

// StatusKey identifies an item's status across refreshes.
type StatusKey struct {
	OrderID  int64
	ItemName string
}

// Statuses collects the current item statuses keyed by order and item name.
func Statuses(orders []Order) map[StatusKey]status.Status {
	out := make(map[StatusKey]status.Status)
	for _, o := range orders {
		for _, it := range o.Items {
			out[StatusKey{OrderID: o.OrderID, ItemName: it.Name}] = it.Status
		}
	}

	return out
}
