package ieventpublisher

import (
	"context"

	"github.com/corray333/backend-labs/cafe/internal/service/models/event"
)

//go:generate mockgen -source=ieventpublisher.go -destination=mock/ieventpublisher.go

// IEventPublisher publishes domain events.
type IEventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
