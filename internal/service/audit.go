package service

import (
	"context"
	"encoding/json"
	"log/slog"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/ports"
)

type actorKey struct{}

// WithActor attaches the signed-in identity to ctx so mutations can be attributed.
func WithActor(ctx context.Context, id domainauth.Identity) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFrom returns the identity stored by WithActor.
func ActorFrom(ctx context.Context) (domainauth.Identity, bool) {
	id, ok := ctx.Value(actorKey{}).(domainauth.Identity)
	return id, ok
}

// auditRecorder writes audit events best-effort; the console never fails an action
// because its audit row could not be written.
type auditRecorder struct {
	trail  ports.AuditTrail
	logger *slog.Logger
}

func newAuditRecorder(trail ports.AuditTrail, logger *slog.Logger) auditRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return auditRecorder{trail: trail, logger: logger}
}

func (r auditRecorder) record(ctx context.Context, action, subject string, detail map[string]any) {
	actor, _ := ActorFrom(ctx)
	r.recordAs(ctx, actor, action, subject, detail)
}

func (r auditRecorder) recordAs(ctx context.Context, actor domainauth.Identity, action, subject string, detail map[string]any) {
	if r.trail == nil {
		return
	}
	ev := model.AuditEvent{
		Actor:   actor.Name,
		Role:    string(actor.Role),
		Action:  action,
		Subject: subject,
	}
	if len(detail) > 0 {
		if raw, err := json.Marshal(detail); err == nil {
			ev.Detail = raw
		}
	}
	if err := r.trail.Record(ctx, ev); err != nil {
		r.logger.WarnContext(ctx, "audit record failed", "action", action, "error", err)
	}
}
