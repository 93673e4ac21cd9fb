package rewardsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/istaterepo"
	"github.com/corray333/backend-labs/cafe/internal/service/models/catalog"
	"github.com/corray333/backend-labs/cafe/internal/service/models/notice"
	"github.com/corray333/backend-labs/cafe/internal/service/models/reward"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
	"github.com/corray333/backend-labs/cafe/internal/service/sessionlock"
	"github.com/diegoholiveira/jsonlogic/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrCardNotFound   = errors.New("scratch card not found")
	ErrRewardNotFound = errors.New("reward not found")
	ErrInvalidSession = errors.New("invalid session id")
)

// DailyCard is the scratch card offered today, nil when none is due.
type DailyCard struct {
	Card *scratchcard.Card `json:"card,omitempty"`
}

// CardResult is the session's scratch cards after a claim or dismissal.
type CardResult struct {
	ScratchCards []scratchcard.Record `json:"scratch_cards"`
	Notice       *notice.Notice       `json:"notice,omitempty"`
}

// RedeemResult is the points balance after a redemption attempt.
type RedeemResult struct {
	Points int64          `json:"points"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

// RewardService issues scratch cards and redeems loyalty points.
type RewardService struct {
	store   istaterepo.IStateRepository
	catalog catalog.Catalog
	locks   *sessionlock.Locks
	tracer  trace.Tracer
	now     func() time.Time
	pick    func(n int) int
}

// option is a function that configures the RewardService.
type option func(*RewardService)

// MustNewRewardService creates a new RewardService.
func MustNewRewardService(opts ...option) *RewardService {
	s := &RewardService{
		locks:  sessionlock.New(),
		tracer: otel.Tracer("cafe-svc/rewardsvc"),
		now:    time.Now,
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		panic("rewardsvc: state store is required")
	}

	return s
}

// WithStateStore sets the session state store.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithStateStore(store istaterepo.IStateRepository) option {
	return func(s *RewardService) {
		s.store = store
	}
}

// WithCatalog sets the reward and scratch card catalog.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCatalog(c catalog.Catalog) option {
	return func(s *RewardService) {
		s.catalog = c
	}
}

// WithSessionLocks shares the per-session locks with the cart service.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithSessionLocks(l *sessionlock.Locks) option {
	return func(s *RewardService) {
		s.locks = l
	}
}

// WithClock overrides the clock and the random card picker.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time, pick func(n int) int) option {
	return func(s *RewardService) {
		s.now = now
		s.pick = pick
	}
}

// Rewards lists the redeemable rewards.
func (s *RewardService) Rewards() []reward.Reward {
	return s.catalog.Rewards
}

// ScratchCards returns the cards the session has claimed or dismissed.
func (s *RewardService) ScratchCards(ctx context.Context, sessionID string) ([]scratchcard.Record, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if state.ScratchCards == nil {
		return []scratchcard.Record{}, nil
	}

	return state.ScratchCards, nil
}

// DailyScratchCard offers one random eligible card per session per calendar day.
// The day is recorded only when a card is actually offered.
func (s *RewardService) DailyScratchCard(ctx context.Context, sessionID string) (DailyCard, error) {
	ctx, span := s.tracer.Start(ctx, "RewardService.DailyScratchCard", trace.WithAttributes(
		attribute.String("session.id", sessionID),
	))
	defer span.End()

	unlock, err := s.lock(sessionID)
	if err != nil {
		return DailyCard{}, err
	}
	defer unlock()

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return DailyCard{}, fmt.Errorf("failed to load session: %w", err)
	}

	now := s.now()
	today := scratchcard.Day(now)
	if state.LastScratchCardDate == today {
		return DailyCard{}, nil
	}

	eligible := s.eligible(state, now)
	if len(eligible) == 0 {
		return DailyCard{}, nil
	}

	card := eligible[s.pick(len(eligible))]
	if err := s.store.SaveScratchCards(ctx, sessionID, state.ScratchCards, today); err != nil {
		return DailyCard{}, fmt.Errorf("failed to save scratch card date: %w", err)
	}

	slog.Info("Scratch card issued", "session_id", sessionID, "card_id", card.ID)

	return DailyCard{Card: &card}, nil
}

// Claim records the card as claimed. Claiming twice leaves a single claimed record.
func (s *RewardService) Claim(ctx context.Context, sessionID, cardID string) (CardResult, error) {
	card, ok := s.catalog.ScratchCard(cardID)
	if !ok {
		return CardResult{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	records, err := s.record(ctx, sessionID, card, true)
	if err != nil {
		return CardResult{}, err
	}

	return CardResult{ScratchCards: records, Notice: notice.RewardClaimed(card.Description)}, nil
}

// Dismiss records the card as seen but not claimed.
func (s *RewardService) Dismiss(ctx context.Context, sessionID, cardID string) (CardResult, error) {
	card, ok := s.catalog.ScratchCard(cardID)
	if !ok {
		return CardResult{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	records, err := s.record(ctx, sessionID, card, false)
	if err != nil {
		return CardResult{}, err
	}

	return CardResult{ScratchCards: records}, nil
}

// RedeemReward spends the reward's cost in points. Too few points is a silent no-op.
func (s *RewardService) RedeemReward(ctx context.Context, sessionID string, rewardID int) (RedeemResult, error) {
	ctx, span := s.tracer.Start(ctx, "RewardService.RedeemReward", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.Int("reward.id", rewardID),
	))
	defer span.End()

	r, ok := s.catalog.Reward(rewardID)
	if !ok {
		return RedeemResult{}, fmt.Errorf("%w: %d", ErrRewardNotFound, rewardID)
	}

	unlock, err := s.lock(sessionID)
	if err != nil {
		return RedeemResult{}, err
	}
	defer unlock()

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return RedeemResult{}, fmt.Errorf("failed to load session: %w", err)
	}

	if !r.Affordable(state.Points) {
		return RedeemResult{Points: state.Points}, nil
	}

	points := state.Points - r.PointsCost
	if err := s.store.SavePoints(ctx, sessionID, points); err != nil {
		return RedeemResult{}, fmt.Errorf("failed to save points: %w", err)
	}

	slog.Info("Reward redeemed", "session_id", sessionID, "reward_id", r.ID, "points", points)

	return RedeemResult{Points: points, Notice: notice.RewardRedeemed(r.Name)}, nil
}

func (s *RewardService) record(
	ctx context.Context,
	sessionID string,
	card scratchcard.Card,
	claimed bool,
) ([]scratchcard.Record, error) {
	unlock, err := s.lock(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	records := scratchcard.Upsert(state.ScratchCards, card, claimed)
	if err := s.store.SaveScratchCards(ctx, sessionID, records, state.LastScratchCardDate); err != nil {
		return nil, fmt.Errorf("failed to save scratch cards: %w", err)
	}

	return records, nil
}

func (s *RewardService) lock(sessionID string) (func(), error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	return s.locks.Lock(sessionID), nil
}

// eligible filters the catalog cards whose rule holds for the session. A card
// without a rule is always eligible; a rule that fails to evaluate is not.
func (s *RewardService) eligible(state session.State, now time.Time) []scratchcard.Card {
	data, err := json.Marshal(map[string]any{
		"points":  state.Points,
		"orders":  len(state.Orders),
		"weekday": now.Weekday().String(),
	})
	if err != nil {
		slog.Error("Failed to encode rule data", "error", err)
		return nil
	}

	out := make([]scratchcard.Card, 0, len(s.catalog.ScratchCards))
	for _, card := range s.catalog.ScratchCards {
		if len(card.When) == 0 {
			out = append(out, card)
			continue
		}

		ok, err := evaluate(card.When, data)
		if err != nil {
			slog.Warn("Failed to evaluate scratch card rule", "card_id", card.ID, "error", err)
			continue
		}
		if ok {
			out = append(out, card)
		}
	}

	return out
}

func evaluate(rule map[string]any, data []byte) (bool, error) {
	ruleJSON, err := json.Marshal(rule)
	if err != nil {
		return false, err
	}

	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(data), &result); err != nil {
		return false, err
	}

	var v any
	if err := json.Unmarshal(result.Bytes(), &v); err != nil {
		return false, err
	}

	return truthy(v), nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	default:
		return true
	}
}
