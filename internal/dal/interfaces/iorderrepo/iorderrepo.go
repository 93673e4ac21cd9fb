package iorderrepo

import (
	"context"

	"github.com/corray333/backend-labs/cafe/internal/service/models/order"
)

// IOrderRepository stores the order history of customer sessions.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) error
	ListBySession(ctx context.Context, sessionID string) ([]order.Order, error)
}
