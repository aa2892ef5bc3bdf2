package ports

import (
	"context"

	"github.com/target/storefront-admin/internal/domain/model"
)

// AuditTrail persists console actions for operators.
type AuditTrail interface {
	Record(ctx context.Context, ev model.AuditEvent) error
	Recent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}
