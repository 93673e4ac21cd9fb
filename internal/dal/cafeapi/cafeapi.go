package cafeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/service/models/group"
	"github.com/corray333/backend-labs/cafe/internal/service/models/kitchen"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/report"
	"github.com/corray333/backend-labs/cafe/internal/service/models/user"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 10 * time.Second

// StatusError is returned when the café API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("cafe api responded with status %d", e.Code)
	}

	return fmt.Sprintf("cafe api responded with status %d: %s", e.Code, e.Detail)
}

// AsStatusError unwraps a StatusError from err.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}

	return nil, false
}

// Client talks to the external café order and menu service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer("cafe-svc/cafeapi"),
	}
}

// MustNewClient creates a client from the cafeapi.* configuration.
func MustNewClient() *Client {
	baseURL := viper.GetString("cafeapi.base_url")
	if baseURL == "" {
		panic("cafeapi.base_url is not configured")
	}
	if _, err := url.Parse(baseURL); err != nil {
		panic(fmt.Sprintf("invalid cafeapi.base_url: %v", err))
	}

	return NewClient(baseURL, time.Duration(viper.GetInt("cafeapi.timeout_seconds"))*time.Second)
}

// Menu fetches the admin menu.
func (c *Client) Menu(ctx context.Context) ([]menu.Item, error) {
	var items []menu.Item
	if err := c.do(ctx, http.MethodGet, "/api/menu-for-admin", nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// OfferItem fetches the least ordered item of the day.
func (c *Client) OfferItem(ctx context.Context) (menu.Item, error) {
	var item menu.Item
	if err := c.do(ctx, http.MethodGet, "/api/get_offer_item", nil, &item); err != nil {
		return menu.Item{}, err
	}

	return item, nil
}

// AddMenuItem creates a menu item.
func (c *Client) AddMenuItem(ctx context.Context, item menu.NewItem) error {
	return c.do(ctx, http.MethodPost, "/api/menu", item, nil)
}

// EditMenuItem applies a partial update to a menu item.
func (c *Client) EditMenuItem(ctx context.Context, edit menu.Edit) error {
	return c.do(ctx, http.MethodPut, "/api/menu", edit, nil)
}

// DeleteMenuItem deletes a menu item by SKU.
func (c *Client) DeleteMenuItem(ctx context.Context, sku string) error {
	return c.do(ctx, http.MethodDelete, "/api/menu/"+url.PathEscape(sku), nil, nil)
}

// KitchenOrders fetches the orders shown on the kitchen board.
func (c *Client) KitchenOrders(ctx context.Context) ([]kitchen.Order, error) {
	var orders []kitchen.Order
	if err := c.do(ctx, http.MethodGet, "/api/get_order_management", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Groups fetches the active order groups.
func (c *Client) Groups(ctx context.Context) ([]group.Group, error) {
	var groups []group.Group
	if err := c.do(ctx, http.MethodGet, "/api/group_orders", nil, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// Login authenticates a user.
func (c *Client) Login(ctx context.Context, creds user.Credentials) (user.User, error) {
	var resp struct {
		User user.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &resp); err != nil {
		return user.User{}, err
	}

	return resp.User, nil
}

// Signup registers a customer and returns the new user id.
func (c *Client) Signup(ctx context.Context, req user.Signup) (string, error) {
	var resp struct {
		UserID string `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/signup", req, &resp); err != nil {
		return "", err
	}

	return resp.UserID, nil
}

// Settlements fetches the per-channel settlement totals.
func (c *Client) Settlements(ctx context.Context) (report.Settlements, error) {
	var s report.Settlements
	if err := c.do(ctx, http.MethodGet, "/api/settlement_master", nil, &s); err != nil {
		return nil, err
	}

	return s, nil
}

// CompanySales fetches the company sales series.
func (c *Client) CompanySales(ctx context.Context) ([]report.CompanySales, error) {
	var rows []report.CompanySales
	if err := c.do(ctx, http.MethodGet, "/api/company_data", nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// Allocations fetches waiter table allocations.
func (c *Client) Allocations(ctx context.Context) ([]report.Allocation, error) {
	var rows []report.Allocation
	if err := c.do(ctx, http.MethodGet, "/api/get_allocations", nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "cafeapi "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

// readDetail extracts the "detail" message of an error response.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}

	return string(payload.Detail)
}
