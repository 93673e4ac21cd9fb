package group

import "slices"

// Group represents a bundle of orders sharing SKUs that the kitchen completes together.
type Group struct {
	GroupID  int64    `json:"group_id"`
	OrderIDs []int64  `json:"order_ids"`
	SKUs     []string `json:"skus"`
	SKUNames []string `json:"sku_names"`
}

// HasOrder reports whether the order belongs to the group.
func (g Group) HasOrder(orderID int64) bool {
	return slices.Contains(g.OrderIDs, orderID)
}

// Without returns the groups minus the one with the given id.
func Without(groups []Group, groupID int64) ([]Group, bool) {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.GroupID != groupID {
			out = append(out, g)
		}
	}

	return out, len(out) != len(groups)
}
