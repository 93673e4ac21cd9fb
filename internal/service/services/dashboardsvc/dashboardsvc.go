package dashboardsvc

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi"
	"github.com/corray333/backend-labs/cafe/internal/service/models/report"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Dashboard is the admin overview.
type Dashboard struct {
	OnlineDelivery report.Settlement     `json:"online_delivery"`
	CreditCard     report.Settlement     `json:"credit_card"`
	Settlements    report.Settlements    `json:"settlements"`
	SalesChart     []report.ChartPoint   `json:"sales_chart"`
	Waiters        []report.WaiterTables `json:"waiters"`
	RefreshedAt    time.Time             `json:"refreshed_at"`
}

type snapshot struct {
	settlements report.Settlements
	sales       []report.CompanySales
	allocations []report.Allocation
	refreshedAt time.Time
}

// DashboardService caches the admin reports fetched from the café API.
type DashboardService struct {
	api    icafeapi.IReportAPI
	tracer trace.Tracer
	now    func() time.Time

	mu   sync.RWMutex
	snap snapshot
}

// option is a function that configures the DashboardService.
type option func(*DashboardService)

// MustNewDashboardService creates a new DashboardService.
func MustNewDashboardService(opts ...option) *DashboardService {
	s := &DashboardService{
		tracer: otel.Tracer("cafe-svc/dashboardsvc"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.api == nil {
		panic("dashboardsvc: report api is required")
	}

	return s
}

// WithReportAPI sets the café API client.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithReportAPI(api icafeapi.IReportAPI) option {
	return func(s *DashboardService) {
		s.api = api
	}
}

// WithClock overrides the clock.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *DashboardService) {
		s.now = now
	}
}

// Refresh fetches settlements, sales and allocations concurrently.
// Each failed fetch keeps its previous data and is logged.
func (s *DashboardService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "DashboardService.Refresh")
	defer span.End()

	var (
		g                              errgroup.Group
		settlements                    report.Settlements
		sales                          []report.CompanySales
		allocations                    []report.Allocation
		settleErr, salesErr, allocsErr error
	)

	g.Go(func() error {
		settlements, settleErr = s.api.Settlements(ctx)
		return nil
	})
	g.Go(func() error {
		sales, salesErr = s.api.CompanySales(ctx)
		return nil
	})
	g.Go(func() error {
		allocations, allocsErr = s.api.Allocations(ctx)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if settleErr != nil {
		slog.Error("Failed to fetch settlements", "error", settleErr)
	} else {
		s.snap.settlements = settlements
	}
	if salesErr != nil {
		slog.Error("Failed to fetch company sales", "error", salesErr)
	} else {
		s.snap.sales = sales
	}
	if allocsErr != nil {
		slog.Error("Failed to fetch allocations", "error", allocsErr)
	} else {
		s.snap.allocations = allocations
	}
	s.snap.refreshedAt = s.now().UTC()

	return errors.Join(settleErr, salesErr, allocsErr)
}

// Dashboard projects the cached reports.
func (s *DashboardService) Dashboard() Dashboard {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	settlements := snap.settlements
	if settlements == nil {
		settlements = report.Settlements{}
	}
	waiters := report.ByWaiter(snap.allocations)
	if waiters == nil {
		waiters = []report.WaiterTables{}
	}

	return Dashboard{
		OnlineDelivery: settlements.Channel(report.ChannelOnlineDelivery),
		CreditCard:     settlements.Channel(report.ChannelCreditCard),
		Settlements:    settlements,
		SalesChart:     report.HourlyChart(snap.sales),
		Waiters:        waiters,
		RefreshedAt:    snap.refreshedAt,
	}
}
