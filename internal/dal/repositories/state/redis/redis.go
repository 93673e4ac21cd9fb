package redisstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/order"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
	"github.com/redis/go-redis/v9"
)

// Store keeps session state under fixed keys per session:
//
//	cafe:session:{id}:cart             JSON cart
//	cafe:session:{id}:orders           list of JSON orders
//	cafe:session:{id}:points           integer
//	cafe:session:{id}:scratchcards     JSON records
//	cafe:session:{id}:scratchcard_date last issue date
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(sessionID, field string) string {
	return fmt.Sprintf("cafe:session:%s:%s", sessionID, field)
}

func (s *Store) Load(ctx context.Context, sessionID string) (session.State, error) {
	var (
		cartCmd   *redis.StringCmd
		ordersCmd *redis.StringSliceCmd
		pointsCmd *redis.StringCmd
		cardsCmd  *redis.StringCmd
		dateCmd   *redis.StringCmd
	)

	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		cartCmd = p.Get(ctx, key(sessionID, "cart"))
		ordersCmd = p.LRange(ctx, key(sessionID, "orders"), 0, -1)
		pointsCmd = p.Get(ctx, key(sessionID, "points"))
		cardsCmd = p.Get(ctx, key(sessionID, "scratchcards"))
		dateCmd = p.Get(ctx, key(sessionID, "scratchcard_date"))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return session.State{}, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var state session.State

	if err := decode(cartCmd, &state.Cart); err != nil {
		return session.State{}, fmt.Errorf("cart: %w", err)
	}
	if err := decode(cardsCmd, &state.ScratchCards); err != nil {
		return session.State{}, fmt.Errorf("scratch cards: %w", err)
	}

	if err := ordersCmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return session.State{}, fmt.Errorf("orders: %w", err)
	}
	for _, raw := range ordersCmd.Val() {
		var o order.Order
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return session.State{}, fmt.Errorf("failed to decode order: %w", err)
		}
		state.Orders = append(state.Orders, o)
	}

	points, err := pointsCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return session.State{}, fmt.Errorf("points: %w", err)
	}
	state.Points = points

	state.LastScratchCardDate = dateCmd.Val()

	return state, nil
}

// decode unmarshals a JSON value; a missing key leaves dst untouched.
func decode(cmd *redis.StringCmd, dst any) error {
	data, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}

func (s *Store) SaveCart(ctx context.Context, sessionID string, c cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.client.Set(ctx, key(sessionID, "cart"), data, 0).Err()
}

func (s *Store) SavePoints(ctx context.Context, sessionID string, points int64) error {
	return s.client.Set(ctx, key(sessionID, "points"), points, 0).Err()
}

func (s *Store) SaveScratchCards(
	ctx context.Context,
	sessionID string,
	records []scratchcard.Record,
	lastIssued string,
) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode scratch cards: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key(sessionID, "scratchcards"), data, 0)
		p.Set(ctx, key(sessionID, "scratchcard_date"), lastIssued, 0)
		return nil
	})

	return err
}

// Checkout appends the order, adds the points and clears the cart in one MULTI/EXEC.
func (s *Store) Checkout(ctx context.Context, sessionID string, checkout session.Checkout) error {
	data, err := json.Marshal(checkout.Order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key(sessionID, "orders"), data)
		p.IncrBy(ctx, key(sessionID, "points"), checkout.PointsEarned)
		p.Del(ctx, key(sessionID, "cart"))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to checkout session %s: %w", sessionID, err)
	}

	return nil
}
