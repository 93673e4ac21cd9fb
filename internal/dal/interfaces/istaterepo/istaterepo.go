package istaterepo

import (
	"context"

	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
)

// IStateRepository persists customer session state.
type IStateRepository interface {
	// Load returns the session state; an unknown session yields the zero State.
	Load(ctx context.Context, sessionID string) (session.State, error)

	SaveCart(ctx context.Context, sessionID string, c cart.Cart) error

	SavePoints(ctx context.Context, sessionID string, points int64) error

	// SaveScratchCards stores the records together with the last issue date.
	SaveScratchCards(ctx context.Context, sessionID string, records []scratchcard.Record, lastIssued string) error

	// Checkout appends the order, adds the earned points and clears the cart as one atomic change.
	Checkout(ctx context.Context, sessionID string, checkout session.Checkout) error
}
