package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/corray333/backend-labs/cafe/internal/service/services/authsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/boardsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/cartsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/dashboardsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/menusvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/rewardsvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/auth"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/board"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/carts"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/dashboard"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/docs"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/menus"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/rewards"
	"github.com/corray333/backend-labs/cafe/pkg/http/middleware/trace"
	"github.com/corray333/backend-labs/cafe/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// Services are the handlers' backends.
type Services struct {
	Menu      *menusvc.MenuService
	Cart      *cartsvc.CartService
	Rewards   *rewardsvc.RewardService
	Board     *boardsvc.BoardService
	Dashboard *dashboardsvc.DashboardService
	Auth      *authsvc.AuthService
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	services Services
}

func NewHTTPTransport(services Services) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		services: services,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// Handler exposes the router.
func (h *HTTPTransport) Handler() http.Handler {
	return h.router
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	s := h.services

	h.router.Get(docs.DocPath, docs.OpenAPI)
	h.router.Get("/swagger/*", docs.UI())

	h.router.Route("/api", func(r chi.Router) {
		r.Post("/login", auth.Login(s.Auth))
		r.Post("/signup", auth.Signup(s.Auth))

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menus.Search(s.Menu))
			r.Get("/categories", menus.Categories(s.Menu))
			r.Get("/offer", menus.Offer(s.Menu))
			r.Post("/", menus.Add(s.Menu))
			r.Put("/", menus.Edit(s.Menu))
			r.Delete("/{sku}", menus.Delete(s.Menu))
		})

		r.Get("/rewards", rewards.List(s.Rewards))

		r.Route("/sessions/{sid}", func(r chi.Router) {
			r.Get("/cart", carts.Get(s.Cart))
			r.Post("/cart/items", carts.AddItem(s.Cart))
			r.Patch("/cart/items/{itemID}", carts.UpdateItem(s.Cart))
			r.Delete("/cart/items/{itemID}", carts.RemoveItem(s.Cart))
			r.Post("/checkout", carts.Checkout(s.Cart))
			r.Get("/orders", carts.Orders(s.Cart))
			r.Get("/points", carts.Points(s.Cart))

			r.Get("/scratchcards", rewards.ScratchCards(s.Rewards))
			r.Post("/scratchcards/daily", rewards.Daily(s.Rewards))
			r.Post("/scratchcards/{cardID}/claim", rewards.Claim(s.Rewards))
			r.Post("/scratchcards/{cardID}/dismiss", rewards.Dismiss(s.Rewards))
			r.Post("/rewards/{rewardID}/redeem", rewards.Redeem(s.Rewards))
		})

		r.Route("/board", func(r chi.Router) {
			r.Get("/", board.Get(s.Board))
			r.Post("/refresh", board.Refresh(s.Board))
			r.Put("/orders/{orderID}/items/{itemName}/status", board.SetItemStatus(s.Board))
			r.Post("/groups/{groupID}/complete", board.CompleteGroup(s.Board))
		})

		r.Get("/dashboard", dashboard.Get(s.Dashboard))
		r.Post("/dashboard/refresh", dashboard.Refresh(s.Dashboard))
	})
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
