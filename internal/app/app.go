package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/cafeapi"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/ieventpublisher"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/ioutboxrepo"
	"github.com/corray333/backend-labs/cafe/internal/dal/postgres"
	"github.com/corray333/backend-labs/cafe/internal/dal/rabbitmq"
	redisclient "github.com/corray333/backend-labs/cafe/internal/dal/redis"
	outboxrepo "github.com/corray333/backend-labs/cafe/internal/dal/repositories/outbox/postgres"
	"github.com/corray333/backend-labs/cafe/internal/dal/repositories/state"
	"github.com/corray333/backend-labs/cafe/internal/otel"
	"github.com/corray333/backend-labs/cafe/internal/service/models/catalog"
	"github.com/corray333/backend-labs/cafe/internal/service/services/authsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/boardsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/cartsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/dashboardsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/menusvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/rewardsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/sessionlock"
	grpctransport "github.com/corray333/backend-labs/cafe/internal/transport/grpc"
	httptransport "github.com/corray333/backend-labs/cafe/internal/transport/http"
	outboxworker "github.com/corray333/backend-labs/cafe/internal/worker/outbox"
	"github.com/corray333/backend-labs/cafe/internal/worker/refresh"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// App represents the application.
type App struct {
	transport      *httptransport.HTTPTransport
	grpcTransport  *grpctransport.GRPCTransport
	refreshWorker  *refresh.Worker
	outboxWorker   *outboxworker.Worker
	postgresClient *postgres.Client
	redisClient    *redis.Client
	rabbitClient   *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	a := &App{}

	if viper.GetBool("otel.enabled") {
		a.otelController = otel.MustInitOtel()
	}

	driver := viper.GetString("state.driver")
	eventsEnabled := viper.GetBool("events.enabled")

	if driver == state.DriverPostgres || (eventsEnabled && viper.GetBool("rabbitmq.outbox.enabled")) {
		a.postgresClient = postgres.MustNewClient()
	}
	if driver == state.DriverRedis {
		a.redisClient = redisclient.MustNewClient()
	}

	store, err := state.New(driver, a.postgresClient, a.redisClient)
	if err != nil {
		panic(err)
	}

	var publisher ieventpublisher.IEventPublisher
	if eventsEnabled {
		a.rabbitClient = rabbitmq.MustNewClient()

		var outbox ioutboxrepo.IOutboxRepository
		if a.postgresClient != nil {
			repo := outboxrepo.NewOutboxRepository(a.postgresClient.Pool())
			outbox = repo
			a.outboxWorker = outboxworker.NewWorker(repo, a.rabbitClient.Channel())
		}
		publisher = rabbitmq.NewPublisher(a.rabbitClient.Channel(), outbox, rabbitmq.ExchangeName())
	}

	cat, err := catalog.Load(viper.GetString("rewards.catalog_path"))
	if err != nil {
		panic(err)
	}

	api := cafeapi.MustNewClient()
	locks := sessionlock.New()

	menuSvc := menusvc.MustNewMenuService(
		menusvc.WithMenuAPI(api),
		menusvc.WithRecommendations(cat.Recommendations),
	)
	boardSvc := boardsvc.MustNewBoardService(
		boardsvc.WithKitchenAPI(api),
		boardsvc.WithEventPublisher(publisher),
	)
	dashboardSvc := dashboardsvc.MustNewDashboardService(
		dashboardsvc.WithReportAPI(api),
	)

	a.transport = httptransport.NewHTTPTransport(httptransport.Services{
		Menu: menuSvc,
		Cart: cartsvc.MustNewCartService(
			cartsvc.WithStateStore(store),
			cartsvc.WithMenu(menuSvc),
			cartsvc.WithEventPublisher(publisher),
			cartsvc.WithSessionLocks(locks),
		),
		Rewards: rewardsvc.MustNewRewardService(
			rewardsvc.WithStateStore(store),
			rewardsvc.WithCatalog(cat),
			rewardsvc.WithSessionLocks(locks),
		),
		Board:     boardSvc,
		Dashboard: dashboardSvc,
		Auth:      authsvc.MustNewAuthService(authsvc.WithAuthAPI(api)),
	})
	a.transport.RegisterRoutes()

	a.grpcTransport = grpctransport.NewGRPCTransport()

	a.refreshWorker = refresh.NewWorker(
		time.Duration(viper.GetInt("cafeapi.refresh_seconds"))*time.Second,
		map[string]refresh.Refresher{
			"menu":      menuSvc,
			"board":     boardSvc,
			"dashboard": dashboardSvc,
		},
	)

	slog.Info("Application configured", "state_driver", driver, "events", eventsEnabled)

	return a
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go a.refreshWorker.Start(workerCtx)
	if a.outboxWorker != nil {
		go a.outboxWorker.Start(workerCtx)
	}

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	go func() {
		if err := a.grpcTransport.Run(); err != nil {
			slog.Error("gRPC server error", "error", err)
		}
	}()
	a.grpcTransport.SetServing(true)

	<-stop
	slog.Info("Shutdown signal received")
	a.grpcTransport.SetServing(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.grpcTransport.Shutdown(ctx); err != nil {
		slog.Error("gRPC server shutdown error", "error", err)
	} else {
		slog.Info("gRPC server stopped gracefully")
	}

	a.refreshWorker.Stop()
	if a.outboxWorker != nil {
		a.outboxWorker.Stop()
	}
	cancelWorkers()

	a.close()

	slog.Info("Application shutdown complete")
}

func (a *App) close() {
	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			slog.Error("Redis connection close error", "error", err)
		} else {
			slog.Info("Redis connection closed gracefully")
		}
	}

	if a.postgresClient != nil {
		a.postgresClient.Close()
		slog.Info("Database connection closed gracefully")
	}

	if a.otelController != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.otelController.Shutdown(ctx); err != nil {
			slog.Error("Tracer provider shutdown error", "error", err)
		}
	}
}
