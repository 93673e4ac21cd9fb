package session

import (
	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/order"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
)

// State is everything persisted for one customer session.
type State struct {
	Cart                cart.Cart            `json:"cart"`
	Orders              []order.Order        `json:"orders"`
	Points              int64                `json:"points"`
	ScratchCards        []scratchcard.Record `json:"scratchCards"`
	LastScratchCardDate string               `json:"lastScratchCardDate,omitempty"`
}

// Checkout is the atomic state change of placing an order.
type Checkout struct {
	Order        order.Order
	PointsEarned int64
}

// Apply returns the state after the checkout: order appended, points added, cart cleared.
func (s State) Apply(c Checkout) State {
	orders := make([]order.Order, len(s.Orders), len(s.Orders)+1)
	copy(orders, s.Orders)

	s.Orders = append(orders, c.Order)
	s.Points += c.PointsEarned
	s.Cart = nil

	return s
}
