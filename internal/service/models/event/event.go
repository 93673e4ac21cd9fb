package event

import (
	"encoding/json"
	"fmt"
	"time"
)

type Type string

const (
	TypeOrderPlaced    Type = "order.placed"
	TypeGroupCompleted Type = "group.completed"
)

// Event is the envelope published to the message broker.
type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// New wraps a payload into an event envelope.
func New(id string, t Type, payload any, now time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}

	return Event{ID: id, Type: t, OccurredAt: now, Payload: data}, nil
}

// RoutingKey is the broker routing key of the event.
func (e Event) RoutingKey() string {
	return "cafe." + string(e.Type)
}

// GroupCompleted is the payload of a completed kitchen group.
type GroupCompleted struct {
	GroupID  int64    `json:"group_id"`
	OrderIDs []int64  `json:"order_ids"`
	SKUNames []string `json:"sku_names"`
}
