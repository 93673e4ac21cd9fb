package menusvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/corray333/backend-labs/cafe/internal/dal/cafeapi"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// CategoryAll disables the category filter in Search.
const CategoryAll = "all"

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// SearchResult splits matching items into today's specials and the regular menu.
type SearchResult struct {
	Specials []menu.Item `json:"specials"`
	Regular  []menu.Item `json:"regular"`
}

// MenuService caches the café menu and proxies menu management to the café API.
type MenuService struct {
	api             icafeapi.IMenuAPI
	recommendations map[string][]string
	tracer          trace.Tracer

	mu    sync.RWMutex
	items []menu.Item
	index map[string]int
}

// option is a function that configures the MenuService.
type option func(*MenuService)

// MustNewMenuService creates a new MenuService.
func MustNewMenuService(opts ...option) *MenuService {
	s := &MenuService{
		tracer: otel.Tracer("cafe-svc/menusvc"),
		index:  map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.api == nil {
		panic("menusvc: menu api is required")
	}

	return s
}

// WithMenuAPI sets the café API client.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithMenuAPI(api icafeapi.IMenuAPI) option {
	return func(s *MenuService) {
		s.api = api
	}
}

// WithRecommendations sets the item id to suggested item ids map.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRecommendations(recommendations map[string][]string) option {
	return func(s *MenuService) {
		s.recommendations = recommendations
	}
}

// Refresh reloads the menu. On failure the previous menu is kept.
func (s *MenuService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "MenuService.Refresh")
	defer span.End()

	items, err := s.api.Menu(ctx)
	if err != nil {
		slog.Error("Failed to fetch menu, keeping the previous one", "error", err)
		return fmt.Errorf("failed to fetch menu: %w", err)
	}

	index := make(map[string]int, len(items)*2)
	for i, item := range items {
		if item.SKU != "" {
			index[item.SKU] = i
		}
		if item.ID != "" {
			index[item.ID] = i
		}
	}

	s.mu.Lock()
	s.items = items
	s.index = index
	s.mu.Unlock()

	slog.Info("Menu refreshed", "items", len(items))

	return nil
}

// Items returns the cached menu.
func (s *MenuService) Items() []menu.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menu.Item, len(s.items))
	copy(out, s.items)

	return out
}

// Lookup finds an item by id or SKU.
func (s *MenuService) Lookup(key string) (menu.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[key]
	if !ok {
		return menu.Item{}, false
	}

	return s.items[i], true
}

// Search filters the menu by a free-text query and a category.
func (s *MenuService) Search(query, category string) SearchResult {
	category = strings.TrimSpace(category)
	res := SearchResult{Specials: []menu.Item{}, Regular: []menu.Item{}}

	for _, item := range s.Items() {
		if category != "" && !strings.EqualFold(category, CategoryAll) && !strings.EqualFold(item.Category, category) {
			continue
		}
		if !item.Matches(query) {
			continue
		}
		if item.IsSpecial() {
			res.Specials = append(res.Specials, item)
		} else {
			res.Regular = append(res.Regular, item)
		}
	}

	return res
}

// Categories returns the distinct categories of the menu, sorted.
func (s *MenuService) Categories() []string {
	seen := map[string]struct{}{}
	for _, item := range s.Items() {
		if item.Category != "" {
			seen[item.Category] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Recommend returns the first suggestion for an item that is on the menu.
func (s *MenuService) Recommend(itemID string) (menu.Item, bool) {
	for _, id := range s.recommendations[itemID] {
		if item, ok := s.Lookup(id); ok {
			return item, true
		}
	}

	return menu.Item{}, false
}

// OfferItem returns the least ordered item of the day.
func (s *MenuService) OfferItem(ctx context.Context) (menu.Item, error) {
	ctx, span := s.tracer.Start(ctx, "MenuService.OfferItem")
	defer span.End()

	item, err := s.api.OfferItem(ctx)
	if err != nil {
		return menu.Item{}, fmt.Errorf("failed to fetch offer item: %w", err)
	}

	return item, nil
}

// Add creates a menu item and reloads the menu.
func (s *MenuService) Add(ctx context.Context, item menu.NewItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.api.AddMenuItem(ctx, item); err != nil {
		return fmt.Errorf("failed to add menu item: %w", err)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// Edit updates the set fields of a menu item and reloads the menu.
func (s *MenuService) Edit(ctx context.Context, edit menu.Edit) error {
	if strings.TrimSpace(edit.SKU) == "" {
		return fmt.Errorf("%w: sku is required", ErrItemNotFound)
	}
	if edit.Empty() {
		return ErrNothingToUpdate
	}
	if err := s.api.EditMenuItem(ctx, edit); err != nil {
		return notFound(err, edit.SKU)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// Delete removes a menu item and reloads the menu.
func (s *MenuService) Delete(ctx context.Context, sku string) error {
	if err := s.api.DeleteMenuItem(ctx, sku); err != nil {
		return notFound(err, sku)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// notFound maps a 404 of the café API to ErrItemNotFound.
func notFound(err error, sku string) error {
	if se, ok := cafeapi.AsStatusError(err); ok && se.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrItemNotFound, sku)
	}

	return fmt.Errorf("failed to update menu item %s: %w", sku, err)
}

// refreshAfterWrite reloads the menu; a failure only leaves the cache stale.
func (s *MenuService) refreshAfterWrite(ctx context.Context) {
	_ = s.Refresh(ctx)
}
