package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/mocks"
)

func TestDashboardService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	dash := mocks.NewMockDashboardAPI(ctrl)
	orderAPI := mocks.NewMockOrderAPI(ctrl)
	audit := mocks.NewMockAuditTrail(ctrl)

	svc := NewDashboardService(DashboardServiceOptions{
		API:    dash,
		Orders: NewOrderService(OrderServiceOptions{API: orderAPI}),
		Deps:   ResourceDeps{Audit: audit},
	})

	dash.EXPECT().Dashboard(gomock.Any()).Return(model.Dashboard{TotalRevenue: 1200, NewCustomers: 4}, nil)
	orderAPI.EXPECT().OrdersByStatus(gomock.Any(), model.OrderOrdered).Return(make([]model.Order, 3), nil)
	audit.EXPECT().Recent(gomock.Any(), recentActivityLimit).Return([]model.AuditEvent{{Action: model.AuditLogout}}, nil)

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, got.Metrics.TotalRevenue, 0.0001)
	assert.Equal(t, 3, got.PendingOrders)
	assert.True(t, got.PendingKnown)
	assert.Len(t, got.Activity, 1)
}

func TestDashboardService_OptionalPanelsDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	dash := mocks.NewMockDashboardAPI(ctrl)
	orderAPI := mocks.NewMockOrderAPI(ctrl)
	audit := mocks.NewMockAuditTrail(ctrl)

	svc := NewDashboardService(DashboardServiceOptions{
		API:    dash,
		Orders: NewOrderService(OrderServiceOptions{API: orderAPI}),
		Deps:   ResourceDeps{Audit: audit},
	})

	dash.EXPECT().Dashboard(gomock.Any()).Return(model.Dashboard{GrowthRate: 2}, nil)
	orderAPI.EXPECT().OrdersByStatus(gomock.Any(), model.OrderOrdered).Return(nil, apperrors.Upstream(500, "down"))
	audit.EXPECT().Recent(gomock.Any(), recentActivityLimit).Return(nil, errors.New("db down"))

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, got.PendingKnown)
	assert.Zero(t, got.PendingOrders)
	assert.Nil(t, got.Activity)
}

func TestDashboardService_MetricsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dash := mocks.NewMockDashboardAPI(ctrl)
	svc := NewDashboardService(DashboardServiceOptions{API: dash})

	dash.EXPECT().Dashboard(gomock.Any()).Return(model.Dashboard{}, apperrors.Upstream(502, "bad gateway"))

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}
