package carts

import (
	"context"
	"net/http"

	"github.com/corray333/backend-labs/cafe/internal/service/models/order"
	"github.com/corray333/backend-labs/cafe/internal/service/services/cartsvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	Cart(ctx context.Context, sessionID string) (cartsvc.View, error)
	AddToCart(ctx context.Context, sessionID, itemID string, quantity int, variant string) (cartsvc.View, error)
	RemoveFromCart(ctx context.Context, sessionID, itemID string) (cartsvc.View, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cartsvc.View, error)
	Checkout(ctx context.Context, sessionID string) (cartsvc.CheckoutResult, error)
	Orders(ctx context.Context, sessionID string) ([]order.Order, error)
	Points(ctx context.Context, sessionID string) (int64, error)
}

type addRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Variant  string `json:"variant"`
	Quantity *int   `json:"quantity"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sid")
}

// Get handles GET /api/sessions/{sid}/cart.
func Get(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Cart(r.Context(), sessionID(r))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, view)
	}
}

// AddItem handles POST /api/sessions/{sid}/cart/items. A missing quantity adds one.
func AddItem(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		view, err := svc.AddToCart(r.Context(), sessionID(r), req.ItemID, quantity, req.Variant)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, view)
	}
}

func UpdateItem(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quantityRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		view, err := svc.UpdateQuantity(r.Context(), sessionID(r), chi.URLParam(r, "itemID"), *req.Quantity)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, view)
	}
}

func RemoveItem(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.RemoveFromCart(r.Context(), sessionID(r), chi.URLParam(r, "itemID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, view)
	}
}

// Checkout handles POST /api/sessions/{sid}/checkout. An empty cart answers 200 with a notice.
func Checkout(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Checkout(r.Context(), sessionID(r))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		code := http.StatusOK
		if res.Order != nil {
			code = http.StatusCreated
		}
		respond.JSON(w, code, res)
	}
}

func Orders(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.Orders(r.Context(), sessionID(r))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, map[string]any{"orders": orders})
	}
}

func Points(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := svc.Points(r.Context(), sessionID(r))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, map[string]int64{"points": points})
	}
}
