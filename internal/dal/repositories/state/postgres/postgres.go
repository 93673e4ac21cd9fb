package postgresstate

import (
	"context"
	"fmt"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/isessionrepo"
	"github.com/corray333/backend-labs/cafe/internal/dal/postgres"
	sessionrepo "github.com/corray333/backend-labs/cafe/internal/dal/repositories/session/postgres"
	orderrepo "github.com/corray333/backend-labs/cafe/internal/dal/repositories/sessionorder/postgres"
	"github.com/corray333/backend-labs/cafe/internal/dal/uow"
	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
)

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	SessionRepository() isessionrepo.ISessionRepository
	OrderRepository() iorderrepo.IOrderRepository
}

// Store keeps session state in the sessions and session_orders tables.
type Store struct {
	client   *postgres.Client
	sessions isessionrepo.ISessionRepository
	orders   iorderrepo.IOrderRepository
}

func NewStore(client *postgres.Client) *Store {
	return &Store{
		client:   client,
		sessions: sessionrepo.NewPostgresSessionRepository(client.Pool()),
		orders:   orderrepo.NewPostgresOrderRepository(client.Pool()),
	}
}

func (s *Store) newUOW() unitOfWork {
	return uow.NewUnitOfWork(s.client)
}

func (s *Store) Load(ctx context.Context, sessionID string) (session.State, error) {
	row, found, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return session.State{}, err
	}
	if !found {
		return session.State{}, nil
	}

	c, records, err := row.ToModel()
	if err != nil {
		return session.State{}, err
	}

	orders, err := s.orders.ListBySession(ctx, sessionID)
	if err != nil {
		return session.State{}, err
	}

	return session.State{
		Cart:                c,
		Orders:              orders,
		Points:              row.Points,
		ScratchCards:        records,
		LastScratchCardDate: row.LastScratchCardDate,
	}, nil
}

func (s *Store) SaveCart(ctx context.Context, sessionID string, c cart.Cart) error {
	return s.sessions.UpsertCart(ctx, sessionID, c)
}

func (s *Store) SavePoints(ctx context.Context, sessionID string, points int64) error {
	return s.sessions.SetPoints(ctx, sessionID, points)
}

func (s *Store) SaveScratchCards(
	ctx context.Context,
	sessionID string,
	records []scratchcard.Record,
	lastIssued string,
) error {
	return s.sessions.UpsertScratchCards(ctx, sessionID, records, lastIssued)
}

// Checkout clears the cart, records the order and adds the points in one transaction.
func (s *Store) Checkout(ctx context.Context, sessionID string, checkout session.Checkout) (err error) {
	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := work.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	if err = work.SessionRepository().UpsertCart(ctx, sessionID, cart.Cart{}); err != nil {
		return err
	}
	if err = work.OrderRepository().Insert(ctx, checkout.Order); err != nil {
		return err
	}
	if err = work.SessionRepository().AddPoints(ctx, sessionID, checkout.PointsEarned); err != nil {
		return err
	}

	if err = work.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit checkout: %w", err)
	}

	return nil
}
