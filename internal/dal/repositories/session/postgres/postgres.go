package postgresrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/backend-labs/cafe/internal/dal/postgres"
	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/jackc/pgx/v5"
)

// SessionDal represents a row of the sessions table.
type SessionDal struct {
	SessionID           string
	Cart                []byte
	Points              int64
	ScratchCards        []byte
	LastScratchCardDate string
}

// ToModel decodes the JSON columns.
func (s SessionDal) ToModel() (cart.Cart, []scratchcard.Record, error) {
	var c cart.Cart
	if len(s.Cart) > 0 {
		if err := json.Unmarshal(s.Cart, &c); err != nil {
			return nil, nil, fmt.Errorf("failed to decode cart: %w", err)
		}
	}

	var records []scratchcard.Record
	if len(s.ScratchCards) > 0 {
		if err := json.Unmarshal(s.ScratchCards, &records); err != nil {
			return nil, nil, fmt.Errorf("failed to decode scratch cards: %w", err)
		}
	}

	return c, records, nil
}

// PostgresSessionRepository stores the per-session columns.
type PostgresSessionRepository struct {
	conn postgres.Querier
}

func NewPostgresSessionRepository(conn postgres.Querier) *PostgresSessionRepository {
	return &PostgresSessionRepository{
		conn: conn,
	}
}

// Get returns the session row; found is false when the session has never been written.
func (r *PostgresSessionRepository) Get(ctx context.Context, sessionID string) (SessionDal, bool, error) {
	query, args, err := sq.Select(
		"session_id",
		"cart",
		"points",
		"scratch_cards",
		"last_scratch_card_date",
	).
		From("sessions").
		Where(sq.Eq{"session_id": sessionID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return SessionDal{}, false, fmt.Errorf("failed to build select query: %w", err)
	}

	var row SessionDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&row.SessionID,
		&row.Cart,
		&row.Points,
		&row.ScratchCards,
		&row.LastScratchCardDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return SessionDal{}, false, nil
	}
	if err != nil {
		return SessionDal{}, false, fmt.Errorf("failed to select session: %w", err)
	}

	return row, true, nil
}

// UpsertCart replaces the cart of the session.
func (r *PostgresSessionRepository) UpsertCart(ctx context.Context, sessionID string, c cart.Cart) error {
	if c == nil {
		c = cart.Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return r.upsert(ctx, sessionID, map[string]any{"cart": data},
		"cart = EXCLUDED.cart")
}

// SetPoints replaces the points balance of the session.
func (r *PostgresSessionRepository) SetPoints(ctx context.Context, sessionID string, points int64) error {
	return r.upsert(ctx, sessionID, map[string]any{"points": points},
		"points = EXCLUDED.points")
}

// AddPoints increments the points balance of the session.
func (r *PostgresSessionRepository) AddPoints(ctx context.Context, sessionID string, delta int64) error {
	return r.upsert(ctx, sessionID, map[string]any{"points": delta},
		"points = sessions.points + EXCLUDED.points")
}

// UpsertScratchCards replaces the scratch card records and the last issue date.
func (r *PostgresSessionRepository) UpsertScratchCards(
	ctx context.Context,
	sessionID string,
	records []scratchcard.Record,
	lastIssued string,
) error {
	if records == nil {
		records = []scratchcard.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode scratch cards: %w", err)
	}

	return r.upsert(ctx, sessionID,
		map[string]any{"scratch_cards": data, "last_scratch_card_date": lastIssued},
		"scratch_cards = EXCLUDED.scratch_cards, last_scratch_card_date = EXCLUDED.last_scratch_card_date")
}

// upsert inserts the session with the given columns or applies the update clause on conflict.
func (r *PostgresSessionRepository) upsert(
	ctx context.Context,
	sessionID string,
	values map[string]any,
	update string,
) error {
	now := time.Now()
	values["session_id"] = sessionID
	values["updated_at"] = now

	query, args, err := sq.Insert("sessions").
		SetMap(values).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET " + update + ", updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	return nil
}
