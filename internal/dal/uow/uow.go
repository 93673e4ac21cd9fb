package uow

import (
	"context"
	"errors"
	"fmt"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/isessionrepo"
	"github.com/corray333/backend-labs/cafe/internal/dal/postgres"
	sessionrepo "github.com/corray333/backend-labs/cafe/internal/dal/repositories/session/postgres"
	orderrepo "github.com/corray333/backend-labs/cafe/internal/dal/repositories/sessionorder/postgres"
	"github.com/jackc/pgx/v5"
)

type unitOfWork struct {
	client      *postgres.Client
	tx          pgx.Tx
	sessionRepo isessionrepo.ISessionRepository
	orderRepo   iorderrepo.IOrderRepository
}

func (u *unitOfWork) SessionRepository() isessionrepo.ISessionRepository {
	return u.sessionRepo
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	return &unitOfWork{
		client:      client,
		sessionRepo: sessionrepo.NewPostgresSessionRepository(client.Pool()),
		orderRepo:   orderrepo.NewPostgresOrderRepository(client.Pool()),
	}
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	// repositories are rebound to the transaction
	u.sessionRepo = sessionrepo.NewPostgresSessionRepository(tx)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	return u.tx.Commit(ctx)
}

// Rollback is a no-op after a successful commit.
func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}

	return err
}
