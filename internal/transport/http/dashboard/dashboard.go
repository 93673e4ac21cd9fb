package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/corray333/backend-labs/cafe/internal/service/services/dashboardsvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	Refresh(ctx context.Context) error
	Dashboard() dashboardsvc.Dashboard
}

func Get(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, svc.Dashboard())
	}
}

func Refresh(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Refresh(r.Context()); err != nil {
			slog.Warn("Dashboard refresh incomplete", "error", err)
		}

		respond.JSON(w, http.StatusOK, svc.Dashboard())
	}
}
