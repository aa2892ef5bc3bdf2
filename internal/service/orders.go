package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	API  ports.OrderAPI // Required
	Deps ResourceDeps
}

// OrderService serves order queues, vouchers and delivery actions.
type OrderService struct {
	api    ports.OrderAPI
	cache  *QueryCache
	audit  auditRecorder
	logger *slog.Logger
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.API == nil {
		panic("OrderAPI is required")
	}
	logger := opts.Deps.logger("orders")
	return &OrderService{
		api:    opts.API,
		cache:  opts.Deps.Cache,
		audit:  newAuditRecorder(opts.Deps.Audit, logger),
		logger: logger,
	}
}

// Orders lists orders in one status.
func (s *OrderService) Orders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	status, ok := model.ParseOrderStatus(string(status))
	if !ok {
		return nil, apperrors.ValidationField("status", "Unknown order status")
	}
	out, err := cachedQuery(ctx, s.cache, FamilyOrders, string(status), func(ctx context.Context) ([]model.Order, error) {
		return s.api.OrdersByStatus(ctx, status)
	})
	if err != nil {
		return nil, fmt.Errorf("list %s orders: %w", status, err)
	}
	return out, nil
}

// Voucher returns the priced detail of one order.
func (s *OrderService) Voucher(ctx context.Context, orderID string) (model.Voucher, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return model.Voucher{}, apperrors.ValidationField("orderId", "Order id is required")
	}
	out, err := cachedQuery(ctx, s.cache, FamilyVoucher, orderID, func(ctx context.Context) (model.Voucher, error) {
		return s.api.Voucher(ctx, orderID)
	})
	if err != nil {
		return model.Voucher{}, fmt.Errorf("get voucher: %w", err)
	}
	return out, nil
}

// Deliver applies a delivery action (Accept, Complete or Reject) to an order.
func (s *OrderService) Deliver(ctx context.Context, orderID, action string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return apperrors.ValidationField("orderId", "Order id is required")
	}
	act, err := model.ParseDeliveryAction(action)
	if err != nil {
		return err
	}
	if err := s.api.DeliveryAccess(ctx, model.DeliveryAccess{OrderID: orderID, Status: act}); err != nil {
		return fmt.Errorf("%s order: %w", strings.ToLower(string(act)), err)
	}
	s.cache.Invalidate(ctx, FamilyOrders, FamilyVoucher, FamilyDashboard)
	s.audit.record(ctx, model.AuditOrderPrefix+strings.ToLower(string(act)), orderID, nil)
	return nil
}
