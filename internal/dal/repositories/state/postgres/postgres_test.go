package postgresstate

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/postgres"
	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/order"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	client *postgres.Client
	store  *Store
	ctx    context.Context
}

func TestStore(t *testing.T) {
	dsn := os.Getenv("CAFE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CAFE_TEST_POSTGRES_DSN is not set")
	}

	client, err := postgres.NewClient(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	suite.Run(t, &StoreTestSuite{client: client, store: NewStore(client), ctx: context.Background()})
}

func (s *StoreTestSuite) latte() menu.Item {
	return menu.Item{
		ID:            "1",
		SKU:           "LAT",
		Name:          "Latte",
		Variations:    map[string]decimal.Decimal{"Regular": decimal.NewFromInt(100)},
		TaxPercentage: decimal.NewFromInt(5),
	}
}

func (s *StoreTestSuite) TestUnknownSessionIsEmpty() {
	state, err := s.store.Load(s.ctx, uuid.NewString())
	s.Require().NoError(err)
	s.Empty(state.Cart)
	s.Empty(state.Orders)
	s.Zero(state.Points)
}

func (s *StoreTestSuite) TestCartAndScratchCardsRoundTrip() {
	sid := uuid.NewString()
	c, _ := cart.Cart{}.Add(s.latte(), 2, "Regular")

	s.Require().NoError(s.store.SaveCart(s.ctx, sid, c))
	s.Require().NoError(s.store.SaveScratchCards(s.ctx, sid,
		[]scratchcard.Record{{Card: scratchcard.Card{ID: "c1"}, Claimed: true}}, "2025-03-01"))
	s.Require().NoError(s.store.SavePoints(s.ctx, sid, 40))

	state, err := s.store.Load(s.ctx, sid)
	s.Require().NoError(err)
	s.Require().Len(state.Cart, 1)
	s.Equal(2, state.Cart[0].Quantity)
	s.True(decimal.NewFromInt(100).Equal(state.Cart[0].UnitPrice()))
	s.Equal("2025-03-01", state.LastScratchCardDate)
	s.True(state.ScratchCards[0].Claimed)
	s.Equal(int64(40), state.Points)
}

func (s *StoreTestSuite) TestCheckoutIsAtomic() {
	sid := uuid.NewString()
	c, _ := cart.Cart{}.Add(s.latte(), 2, "Regular")
	s.Require().NoError(s.store.SaveCart(s.ctx, sid, c))
	s.Require().NoError(s.store.SavePoints(s.ctx, sid, 5))

	o := order.FromCart(uuid.NewString(), sid, c, time.Now().UTC())
	s.Require().NoError(s.store.Checkout(s.ctx, sid, session.Checkout{Order: o, PointsEarned: o.Summary.Points}))

	state, err := s.store.Load(s.ctx, sid)
	s.Require().NoError(err)
	s.Empty(state.Cart)
	s.Require().Len(state.Orders, 1)
	s.Equal(o.ID, state.Orders[0].ID)
	s.Equal(int64(5)+o.Summary.Points, state.Points)

	// a duplicate order id fails the insert and must leave everything untouched
	c2, _ := cart.Cart{}.Add(s.latte(), 1, "Regular")
	s.Require().NoError(s.store.SaveCart(s.ctx, sid, c2))
	err = s.store.Checkout(s.ctx, sid, session.Checkout{Order: o, PointsEarned: 100})
	s.Require().Error(err)

	state, err = s.store.Load(s.ctx, sid)
	s.Require().NoError(err)
	s.Len(state.Cart, 1)
	s.Len(state.Orders, 1)
	s.Equal(int64(5)+o.Summary.Points, state.Points)
}
