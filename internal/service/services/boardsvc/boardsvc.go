package boardsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/ieventpublisher"
	"github.com/corray333/backend-labs/cafe/internal/service/models/event"
	"github.com/corray333/backend-labs/cafe/internal/service/models/group"
	"github.com/corray333/backend-labs/cafe/internal/service/models/kitchen"
	"github.com/corray333/backend-labs/cafe/internal/service/models/status"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var ErrOrderNotFound = errors.New("order not found")

// snapshot is never mutated after it is published.
type snapshot struct {
	orders    []kitchen.Order
	groups    []group.Group
	completed map[int64]struct{}
}

// OrderView is a kitchen order with its derived fields.
type OrderView struct {
	kitchen.Order
	Status           status.Status `json:"status"`
	AssignedTable    string        `json:"assigned_table"`
	PreparingMinutes int           `json:"preparing_time"`
	AllDelivered     bool          `json:"all_delivered"`
}

// BoardService holds the kitchen board: orders with per-item statuses and the active groups.
type BoardService struct {
	api       icafeapi.IKitchenAPI
	publisher ieventpublisher.IEventPublisher
	tracer    trace.Tracer
	now       func() time.Time

	mu   sync.RWMutex
	snap *snapshot
}

// option is a function that configures the BoardService.
type option func(*BoardService)

// MustNewBoardService creates a new BoardService.
func MustNewBoardService(opts ...option) *BoardService {
	s := &BoardService{
		tracer: otel.Tracer("cafe-svc/boardsvc"),
		now:    time.Now,
		snap:   &snapshot{completed: map[int64]struct{}{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.api == nil {
		panic("boardsvc: kitchen api is required")
	}

	return s
}

// WithKitchenAPI sets the café API client.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithKitchenAPI(api icafeapi.IKitchenAPI) option {
	return func(s *BoardService) {
		s.api = api
	}
}

// WithEventPublisher sets the publisher of group.completed events.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventPublisher(p ieventpublisher.IEventPublisher) option {
	return func(s *BoardService) {
		s.publisher = p
	}
}

// WithClock overrides the clock used for preparing times.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *BoardService) {
		s.now = now
	}
}

// Refresh fetches orders and groups concurrently. A failed fetch keeps the previous
// data for its half of the board. Item statuses set on this board survive the refresh.
func (s *BoardService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "BoardService.Refresh")
	defer span.End()

	var (
		g                   errgroup.Group
		orders              []kitchen.Order
		groups              []group.Group
		ordersErr, groupErr error
	)

	g.Go(func() error {
		orders, ordersErr = s.api.KitchenOrders(ctx)
		return nil
	})
	g.Go(func() error {
		groups, groupErr = s.api.Groups(ctx)
		return nil
	})
	_ = g.Wait()

	if ordersErr != nil {
		slog.Error("Failed to fetch kitchen orders", "error", ordersErr)
	}
	if groupErr != nil {
		slog.Error("Failed to fetch order groups", "error", groupErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.snap
	next := &snapshot{
		orders:    prev.orders,
		groups:    prev.groups,
		completed: prev.completed,
	}

	if ordersErr == nil {
		known := kitchen.Statuses(prev.orders)
		next.orders = make([]kitchen.Order, len(orders))
		for i, o := range orders {
			o.Items = slices.Clone(o.Items)
			for j, it := range o.Items {
				if st, ok := known[kitchen.StatusKey{OrderID: o.OrderID, ItemName: it.Name}]; ok {
					o.Items[j].Status = st
				}
			}
			next.orders[i] = o
		}
	}

	if groupErr == nil {
		// A completed id is kept only while the café API still lists the group.
		next.groups = make([]group.Group, 0, len(groups))
		next.completed = make(map[int64]struct{})
		for _, gr := range groups {
			if _, done := prev.completed[gr.GroupID]; done {
				next.completed[gr.GroupID] = struct{}{}
				continue
			}
			next.groups = append(next.groups, gr)
		}
	}

	s.snap = next

	span.SetAttributes(
		attribute.Int("board.orders", len(next.orders)),
		attribute.Int("board.groups", len(next.groups)),
	)

	return errors.Join(ordersErr, groupErr)
}

// Orders returns the board orders with their statuses computed from the items.
func (s *BoardService) Orders() []OrderView {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	now := s.now()
	views := make([]OrderView, len(snap.orders))
	for i, o := range snap.orders {
		views[i] = OrderView{
			Order:            o,
			Status:           o.Status(),
			AssignedTable:    o.AssignedTable(),
			PreparingMinutes: o.PreparingMinutes(now),
			AllDelivered:     o.AllDelivered(),
		}
	}

	return views
}

// Order returns a single board order.
func (s *BoardService) Order(orderID int64) (OrderView, error) {
	for _, v := range s.Orders() {
		if v.OrderID == orderID {
			return v, nil
		}
	}

	return OrderView{}, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
}

// Groups returns the active groups.
func (s *BoardService) Groups() []group.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.snap.groups)
}

// SetItemStatus sets the status of every item with the name on the order.
func (s *BoardService) SetItemStatus(orderID int64, itemName string, st status.Status) (OrderView, error) {
	if _, err := status.Parse(string(st)); err != nil {
		return OrderView{}, err
	}

	s.mu.Lock()
	prev := s.snap
	idx := slices.IndexFunc(prev.orders, func(o kitchen.Order) bool { return o.OrderID == orderID })
	if idx < 0 {
		s.mu.Unlock()
		return OrderView{}, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}

	orders := slices.Clone(prev.orders)
	orders[idx] = orders[idx].WithItemStatus(func(it kitchen.Item) bool { return it.Name == itemName }, st)
	s.snap = &snapshot{orders: orders, groups: prev.groups, completed: prev.completed}
	s.mu.Unlock()

	return s.Order(orderID)
}

// CompleteGroup removes the group and marks the named items of its orders Ready.
// Empty orderIDs or skuNames default to the group's own. The board changes in a single
// snapshot swap. The returned flag reports whether the group was on the board.
func (s *BoardService) CompleteGroup(
	ctx context.Context,
	groupID int64,
	orderIDs []int64,
	skuNames []string,
) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "BoardService.CompleteGroup", trace.WithAttributes(
		attribute.Int64("group.id", groupID),
	))
	defer span.End()

	s.mu.Lock()
	prev := s.snap

	groups, removed := group.Without(prev.groups, groupID)
	if removed {
		gi := slices.IndexFunc(prev.groups, func(g group.Group) bool { return g.GroupID == groupID })
		if len(orderIDs) == 0 {
			orderIDs = prev.groups[gi].OrderIDs
		}
		if len(skuNames) == 0 {
			skuNames = prev.groups[gi].SKUNames
		}
	}

	orders := make([]kitchen.Order, len(prev.orders))
	for i, o := range prev.orders {
		if slices.Contains(orderIDs, o.OrderID) {
			o = o.WithItemStatus(func(it kitchen.Item) bool { return slices.Contains(skuNames, it.Name) }, status.StatusReady)
		}
		orders[i] = o
	}

	completed := make(map[int64]struct{}, len(prev.completed)+1)
	for id := range prev.completed {
		completed[id] = struct{}{}
	}
	completed[groupID] = struct{}{}

	s.snap = &snapshot{orders: orders, groups: groups, completed: completed}
	s.mu.Unlock()

	slog.Info("Group completed", "group_id", groupID, "orders", orderIDs, "items", skuNames, "was_active", removed)

	s.publish(ctx, event.GroupCompleted{GroupID: groupID, OrderIDs: orderIDs, SKUNames: skuNames})

	return removed, nil
}

func (s *BoardService) publish(ctx context.Context, payload event.GroupCompleted) {
	if s.publisher == nil {
		return
	}

	e, err := event.New(uuid.NewString(), event.TypeGroupCompleted, payload, s.now().UTC())
	if err != nil {
		slog.Error("Failed to build event", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Error("Failed to publish event", "type", e.Type, "event_id", e.ID, "error", err)
	}
}
