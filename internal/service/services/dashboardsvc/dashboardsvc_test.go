package dashboardsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_icafeapi "github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi/mock"
	"github.com/corray333/backend-labs/cafe/internal/service/models/report"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*DashboardService, *mock_icafeapi.MockIReportAPI) {
	t.Helper()
	api := mock_icafeapi.NewMockIReportAPI(gomock.NewController(t))
	now := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)

	return MustNewDashboardService(WithReportAPI(api), WithClock(func() time.Time { return now })), api
}

func TestRefreshBuildsDashboard(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Settlements(gomock.Any()).Return(report.Settlements{
		report.ChannelOnlineDelivery: {TotalOrders: 12, TotalSales: decimal.NewFromInt(2400)},
	}, nil)
	api.EXPECT().CompanySales(gomock.Any()).Return([]report.CompanySales{
		{CreatedAt: "2026-03-04T09:15:00", Sales: decimal.NewFromInt(500)},
		{CreatedAt: "garbage", Sales: decimal.NewFromInt(1)},
		{CreatedAt: "2026-03-04T13:00:00Z", Sales: decimal.NewFromInt(700)},
	}, nil)
	api.EXPECT().Allocations(gomock.Any()).Return([]report.Allocation{
		{WaiterID: "w2", WaiterName: "Zoe", TableNo: report.Tables{Tables: []string{"T3"}}},
		{WaiterID: "w1", WaiterName: "Amit", TableNo: report.Tables{Tables: []string{"T1"}}},
		{WaiterID: "w1", WaiterName: "Amit", TableNo: report.Tables{Tables: []string{"T2"}}},
	}, nil)

	require.NoError(t, svc.Refresh(context.Background()))

	d := svc.Dashboard()
	assert.Equal(t, 12, d.OnlineDelivery.TotalOrders)
	assert.Zero(t, d.CreditCard.TotalOrders)
	require.Len(t, d.SalesChart, 2)
	assert.Equal(t, "9AM", d.SalesChart[0].Name)
	assert.Equal(t, "1PM", d.SalesChart[1].Name)
	require.Len(t, d.Waiters, 2)
	assert.Equal(t, "Amit", d.Waiters[0].WaiterName)
	assert.Equal(t, []string{"T1", "T2"}, d.Waiters[0].Tables)
	assert.False(t, d.RefreshedAt.IsZero())
}

func TestRefreshFailureKeepsPreviousSlice(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Settlements(gomock.Any()).Return(report.Settlements{
		report.ChannelCreditCard: {TotalOrders: 3},
	}, nil)
	api.EXPECT().CompanySales(gomock.Any()).Return(nil, nil)
	api.EXPECT().Allocations(gomock.Any()).Return(nil, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	api.EXPECT().Settlements(gomock.Any()).Return(nil, errors.New("502"))
	api.EXPECT().CompanySales(gomock.Any()).Return([]report.CompanySales{
		{CreatedAt: "2026-03-04T10:00:00", Sales: decimal.NewFromInt(10)},
	}, nil)
	api.EXPECT().Allocations(gomock.Any()).Return(nil, errors.New("timeout"))

	err := svc.Refresh(context.Background())
	require.Error(t, err)

	d := svc.Dashboard()
	assert.Equal(t, 3, d.CreditCard.TotalOrders)
	require.Len(t, d.SalesChart, 1)
	assert.Equal(t, "10AM", d.SalesChart[0].Name)
	assert.Empty(t, d.Waiters)
}

func TestDashboardBeforeRefresh(t *testing.T) {
	svc, _ := newService(t)

	d := svc.Dashboard()
	assert.NotNil(t, d.Settlements)
	assert.Empty(t, d.SalesChart)
	assert.NotNil(t, d.Waiters)
}
