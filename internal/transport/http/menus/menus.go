package menus

import (
	"context"
	"net/http"

	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/services/menusvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	Search(query, category string) menusvc.SearchResult
	Categories() []string
	OfferItem(ctx context.Context) (menu.Item, error)
	Add(ctx context.Context, item menu.NewItem) error
	Edit(ctx context.Context, edit menu.Edit) error
	Delete(ctx context.Context, sku string) error
}

// Search handles GET /api/menu?q=&category=.
func Search(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		category := q.Get("category")
		if category == "" {
			category = menusvc.CategoryAll
		}

		respond.JSON(w, http.StatusOK, svc.Search(q.Get("q"), category))
	}
}

func Categories(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string][]string{"categories": svc.Categories()})
	}
}

func Offer(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.OfferItem(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, item)
	}
}

func Add(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item menu.NewItem
		if err := respond.Decode(r, &item); err != nil {
			respond.Error(w, r, err)
			return
		}
		if err := svc.Add(r.Context(), item); err != nil {
			respond.Error(w, r, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func Edit(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var edit menu.Edit
		if err := respond.Decode(r, &edit); err != nil {
			respond.Error(w, r, err)
			return
		}
		if err := svc.Edit(r.Context(), edit); err != nil {
			respond.Error(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func Delete(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "sku")); err != nil {
			respond.Error(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
