package memorystate

import (
	"context"
	"slices"
	"sync"

	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
)

// Store keeps session state in process memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session.State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]session.State)}
}

func (s *Store) Load(_ context.Context, sessionID string) (session.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.sessions[sessionID]), nil
}

func (s *Store) SaveCart(_ context.Context, sessionID string, c cart.Cart) error {
	s.update(sessionID, func(st *session.State) {
		st.Cart = slices.Clone(c)
	})

	return nil
}

func (s *Store) SavePoints(_ context.Context, sessionID string, points int64) error {
	s.update(sessionID, func(st *session.State) {
		st.Points = points
	})

	return nil
}

func (s *Store) SaveScratchCards(
	_ context.Context,
	sessionID string,
	records []scratchcard.Record,
	lastIssued string,
) error {
	s.update(sessionID, func(st *session.State) {
		st.ScratchCards = slices.Clone(records)
		st.LastScratchCardDate = lastIssued
	})

	return nil
}

func (s *Store) Checkout(_ context.Context, sessionID string, checkout session.Checkout) error {
	s.update(sessionID, func(st *session.State) {
		*st = st.Apply(checkout)
	})

	return nil
}

func (s *Store) update(sessionID string, fn func(*session.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.sessions[sessionID]
	fn(&st)
	s.sessions[sessionID] = st
}

func clone(st session.State) session.State {
	st.Cart = slices.Clone(st.Cart)
	st.Orders = slices.Clone(st.Orders)
	st.ScratchCards = slices.Clone(st.ScratchCards)

	return st
}
