package isessionrepo

import (
	"context"

	sessionrepo "github.com/corray333/backend-labs/cafe/internal/dal/repositories/session/postgres"
	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
)

// ISessionRepository stores the per-session row: cart, points and scratch cards.
type ISessionRepository interface {
	Get(ctx context.Context, sessionID string) (sessionrepo.SessionDal, bool, error)
	UpsertCart(ctx context.Context, sessionID string, c cart.Cart) error
	SetPoints(ctx context.Context, sessionID string, points int64) error
	AddPoints(ctx context.Context, sessionID string, delta int64) error
	UpsertScratchCards(ctx context.Context, sessionID string, records []scratchcard.Record, lastIssued string) error
}
