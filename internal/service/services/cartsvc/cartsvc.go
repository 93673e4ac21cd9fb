package cartsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/ieventpublisher"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/istaterepo"
	"github.com/corray333/backend-labs/cafe/internal/service/models/cart"
	"github.com/corray333/backend-labs/cafe/internal/service/models/currency"
	"github.com/corray333/backend-labs/cafe/internal/service/models/event"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/notice"
	"github.com/corray333/backend-labs/cafe/internal/service/models/order"
	"github.com/corray333/backend-labs/cafe/internal/service/models/pricing"
	"github.com/corray333/backend-labs/cafe/internal/service/models/session"
	"github.com/corray333/backend-labs/cafe/internal/service/sessionlock"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrInvalidSession = errors.New("invalid session id")
)

// menuCatalog is the part of the menu service the cart needs.
type menuCatalog interface {
	Lookup(key string) (menu.Item, bool)
	Recommend(itemID string) (menu.Item, bool)
}

// View is the cart with its priced summary and an optional notice for the customer.
type View struct {
	Cart    cart.Cart       `json:"cart"`
	Summary pricing.Summary `json:"summary"`
	Notice  *notice.Notice  `json:"notice,omitempty"`
}

// CheckoutResult is the placed order, nil when nothing was placed.
type CheckoutResult struct {
	Order  *order.Order   `json:"order,omitempty"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

// CartService manages the cart, order history and points of customer sessions.
type CartService struct {
	store     istaterepo.IStateRepository
	menu      menuCatalog
	publisher ieventpublisher.IEventPublisher
	locks     *sessionlock.Locks
	tracer    trace.Tracer
	now       func() time.Time
	newID     func() string
}

// option is a function that configures the CartService.
type option func(*CartService)

// MustNewCartService creates a new CartService.
func MustNewCartService(opts ...option) *CartService {
	s := &CartService{
		locks:  sessionlock.New(),
		tracer: otel.Tracer("cafe-svc/cartsvc"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil || s.menu == nil {
		panic("cartsvc: state store and menu are required")
	}

	return s
}

// WithStateStore sets the session state store.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithStateStore(store istaterepo.IStateRepository) option {
	return func(s *CartService) {
		s.store = store
	}
}

// WithMenu sets the menu catalog.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithMenu(m menuCatalog) option {
	return func(s *CartService) {
		s.menu = m
	}
}

// WithEventPublisher sets the publisher of order.placed events.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventPublisher(p ieventpublisher.IEventPublisher) option {
	return func(s *CartService) {
		s.publisher = p
	}
}

// WithSessionLocks shares the per-session locks with other services writing session state.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithSessionLocks(l *sessionlock.Locks) option {
	return func(s *CartService) {
		s.locks = l
	}
}

// WithClock overrides the clock and the order id generator.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time, newID func() string) option {
	return func(s *CartService) {
		s.now = now
		s.newID = newID
	}
}

// Cart returns the current cart.
func (s *CartService) Cart(ctx context.Context, sessionID string) (View, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}

	return s.view(state.Cart, nil), nil
}

// AddToCart adds quantity units of the item variant. Non-positive quantities are ignored.
func (s *CartService) AddToCart(
	ctx context.Context,
	sessionID, itemID string,
	quantity int,
	variant string,
) (View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddToCart", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("item.id", itemID),
		attribute.Int("quantity", quantity),
	))
	defer span.End()

	unlock, err := s.lock(sessionID)
	if err != nil {
		return View{}, err
	}
	defer unlock()

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return View{}, fmt.Errorf("failed to load session: %w", err)
	}

	if quantity <= 0 {
		return s.view(state.Cart, nil), nil
	}

	item, ok := s.menu.Lookup(itemID)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	variant, err = item.ResolveVariant(variant)
	if err != nil {
		return View{}, err
	}

	next, changed := state.Cart.Add(item, quantity, variant)
	if changed {
		if err := s.store.SaveCart(ctx, sessionID, next); err != nil {
			return View{}, fmt.Errorf("failed to save cart: %w", err)
		}
	}

	return s.view(next, s.suggest(item)), nil
}

// RemoveFromCart removes every line of the item regardless of variant.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, itemID string) (View, error) {
	key := s.lineKey(itemID)

	return s.mutate(ctx, sessionID, func(c cart.Cart) (cart.Cart, bool) {
		return c.Remove(key)
	})
}

// UpdateQuantity sets the quantity of the item's lines. Quantities below one are ignored.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (View, error) {
	key := s.lineKey(itemID)

	return s.mutate(ctx, sessionID, func(c cart.Cart) (cart.Cart, bool) {
		return c.UpdateQuantity(key, quantity)
	})
}

// lineKey maps an id or SKU to the key cart lines are stored under.
func (s *CartService) lineKey(itemID string) string {
	if item, ok := s.menu.Lookup(itemID); ok {
		return item.Key()
	}

	return itemID
}

// Checkout turns the cart into an order, adds the earned points and empties the cart.
// An empty cart is not an error: nothing changes and the result carries a notice.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Checkout", trace.WithAttributes(
		attribute.String("session.id", sessionID),
	))
	defer span.End()

	unlock, err := s.lock(sessionID)
	if err != nil {
		return CheckoutResult{}, err
	}
	defer unlock()

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to load session: %w", err)
	}

	if len(state.Cart) == 0 {
		return CheckoutResult{Notice: notice.CartEmpty}, nil
	}

	available, unavailable := state.Cart.Refresh(s.menu.Lookup)
	if len(available) == 0 {
		return CheckoutResult{Notice: notice.ItemsUnavailable(unavailable.Names())}, nil
	}

	o := order.FromCart(s.newID(), sessionID, available, s.now().UTC())
	if err := s.store.Checkout(ctx, sessionID, session.Checkout{Order: o, PointsEarned: o.Summary.Points}); err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to checkout: %w", err)
	}

	slog.Info("Order placed",
		"session_id", sessionID,
		"order_id", o.ID,
		"total", o.Summary.Total.StringFixed(2),
		"points", o.Summary.Points,
	)

	s.publish(ctx, event.TypeOrderPlaced, o)

	placed := notice.OrderPlaced
	if len(unavailable) > 0 {
		slog.Warn("Order placed without unavailable items", "session_id", sessionID, "items", unavailable.Names())
		placed = notice.OrderPlacedWithout(unavailable.Names())
	}

	return CheckoutResult{Order: &o, Notice: placed}, nil
}

// Summary prices the current cart.
func (s *CartService) Summary(ctx context.Context, sessionID string) (pricing.Summary, error) {
	v, err := s.Cart(ctx, sessionID)
	if err != nil {
		return pricing.Summary{}, err
	}

	return v.Summary, nil
}

// Orders returns the order history, oldest first.
func (s *CartService) Orders(ctx context.Context, sessionID string) ([]order.Order, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Orders == nil {
		return []order.Order{}, nil
	}

	return state.Orders, nil
}

// Points returns the loyalty points balance.
func (s *CartService) Points(ctx context.Context, sessionID string) (int64, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	return state.Points, nil
}

func (s *CartService) mutate(
	ctx context.Context,
	sessionID string,
	fn func(cart.Cart) (cart.Cart, bool),
) (View, error) {
	unlock, err := s.lock(sessionID)
	if err != nil {
		return View{}, err
	}
	defer unlock()

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return View{}, fmt.Errorf("failed to load session: %w", err)
	}

	next, changed := fn(state.Cart)
	if changed {
		if err := s.store.SaveCart(ctx, sessionID, next); err != nil {
			return View{}, fmt.Errorf("failed to save cart: %w", err)
		}
	}

	return s.view(next, nil), nil
}

func (s *CartService) load(ctx context.Context, sessionID string) (session.State, error) {
	if strings.TrimSpace(sessionID) == "" {
		return session.State{}, ErrInvalidSession
	}

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return session.State{}, fmt.Errorf("failed to load session: %w", err)
	}

	return state, nil
}

func (s *CartService) lock(sessionID string) (func(), error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	return s.locks.Lock(sessionID), nil
}

// view prices the cart against the current menu. Lines off the menu are left out with a notice.
func (s *CartService) view(c cart.Cart, n *notice.Notice) View {
	available, unavailable := c.Refresh(s.menu.Lookup)
	if len(unavailable) > 0 && n == nil {
		n = notice.ItemsUnavailable(unavailable.Names())
	}

	return View{Cart: available, Summary: available.Summary(), Notice: n}
}

// suggest builds the "would you like to add" notice for an added item.
func (s *CartService) suggest(item menu.Item) *notice.Notice {
	rec, ok := s.menu.Recommend(item.Key())
	if !ok {
		return nil
	}

	description := rec.Description
	if description == "" {
		description = rec.Name
	}

	n := &notice.Notice{Title: "Would you like to add?", Description: description}
	if variant, err := rec.ResolveVariant(""); err == nil {
		if price, ok := rec.Price(variant); ok {
			n.Action = &notice.Action{
				Label:  fmt.Sprintf("Add for %s%s", currency.Default.Symbol(), price.String()),
				ItemID: rec.Key(),
			}
		}
	}

	return n
}

func (s *CartService) publish(ctx context.Context, t event.Type, payload any) {
	if s.publisher == nil {
		return
	}

	e, err := event.New(s.newID(), t, payload, s.now().UTC())
	if err != nil {
		slog.Error("Failed to build event", "type", t, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Error("Failed to publish event", "type", t, "event_id", e.ID, "error", err)
	}
}
