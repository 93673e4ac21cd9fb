package board

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corray333/backend-labs/cafe/internal/service/models/group"
	"github.com/corray333/backend-labs/cafe/internal/service/models/status"
	"github.com/corray333/backend-labs/cafe/internal/service/services/boardsvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	Refresh(ctx context.Context) error
	Orders() []boardsvc.OrderView
	Groups() []group.Group
	SetItemStatus(orderID int64, itemName string, st status.Status) (boardsvc.OrderView, error)
	CompleteGroup(ctx context.Context, groupID int64, orderIDs []int64, skuNames []string) (bool, error)
}

type boardResponse struct {
	Orders []boardsvc.OrderView `json:"orders"`
	Groups []group.Group        `json:"groups"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type completeRequest struct {
	OrderIDs []int64  `json:"order_ids" validate:"dive,gt=0"`
	SKUNames []string `json:"sku_names" validate:"dive,required"`
}

func Get(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, boardResponse{Orders: svc.Orders(), Groups: svc.Groups()})
	}
}

// Refresh reloads the board. A partially failed refresh still answers with the board it kept.
func Refresh(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Refresh(r.Context()); err != nil {
			slog.Warn("Board refresh incomplete", "error", err)
		}

		respond.JSON(w, http.StatusOK, boardResponse{Orders: svc.Orders(), Groups: svc.Groups()})
	}
}

func SetItemStatus(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(chi.URLParam(r, "orderID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req statusRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}
		st, err := status.Parse(req.Status)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		view, err := svc.SetItemStatus(orderID, chi.URLParam(r, "itemName"), st)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, view)
	}
}

// CompleteGroup handles POST /api/board/groups/{groupID}/complete. An empty body completes
// the group's own orders and items.
func CompleteGroup(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := parseID(chi.URLParam(r, "groupID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req completeRequest
		if r.ContentLength != 0 {
			if err := respond.Decode(r, &req); err != nil {
				respond.Error(w, r, err)
				return
			}
		}

		removed, err := svc.CompleteGroup(r.Context(), groupID, req.OrderIDs, req.SKUNames)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, map[string]any{
			"removed": removed,
			"orders":  svc.Orders(),
			"groups":  svc.Groups(),
		})
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q must be a number", respond.ErrBadRequest, raw)
	}

	return id, nil
}
