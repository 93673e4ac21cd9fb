package outbox

import (
	"math"
	"time"
)

const (
	DefaultMaxRetries  = 5
	ContentTypeJSON    = "application/json"
	baseBackoffSeconds = 30
)

// Message represents an event that failed to be published to RabbitMQ.
type Message struct {
	ID           int64
	EventID      string
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}

// Backoff returns the delay before the given retry attempt: 60s, 120s, 240s and so on.
func Backoff(retryCount int) time.Duration {
	return time.Duration(math.Pow(2, float64(retryCount))*baseBackoffSeconds) * time.Second
}

// Exhausted reports whether the message has no retries left.
func (m Message) Exhausted() bool {
	return m.RetryCount >= m.MaxRetries
}
