package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/ports"
)

const recentActivityLimit = 8

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	API    ports.DashboardAPI // Required
	Orders *OrderService      // Optional: pending order count
	Deps   ResourceDeps
}

// DashboardService assembles the admin landing page.
type DashboardService struct {
	api    ports.DashboardAPI
	orders *OrderService
	cache  *QueryCache
	trail  ports.AuditTrail
	logger *slog.Logger
}

// Overview is everything the dashboard page shows.
type Overview struct {
	Metrics       model.Dashboard
	PendingOrders int
	// PendingKnown is false when the order queue could not be read.
	PendingKnown bool
	Activity     []model.AuditEvent
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.API == nil {
		panic("DashboardAPI is required")
	}
	return &DashboardService{
		api:    opts.API,
		orders: opts.Orders,
		cache:  opts.Deps.Cache,
		trail:  opts.Deps.Audit,
		logger: opts.Deps.logger("dashboard"),
	}
}

// Overview fetches metrics, the ordered queue and recent activity concurrently.
// Only the metrics are required; the other panels degrade to empty.
func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := cachedQuery(gctx, s.cache, FamilyDashboard, "all", s.api.Dashboard)
		if err != nil {
			return fmt.Errorf("dashboard metrics: %w", err)
		}
		out.Metrics = m
		return nil
	})

	if s.orders != nil {
		g.Go(func() error {
			pending, err := s.orders.Orders(gctx, model.OrderOrdered)
			if err != nil {
				s.logger.WarnContext(gctx, "pending orders unavailable", "error", err)
				return nil
			}
			out.PendingOrders = len(pending)
			out.PendingKnown = true
			return nil
		})
	}

	if s.trail != nil {
		g.Go(func() error {
			events, err := s.trail.Recent(gctx, recentActivityLimit)
			if err != nil {
				s.logger.WarnContext(gctx, "recent activity unavailable", "error", err)
				return nil
			}
			out.Activity = events
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
