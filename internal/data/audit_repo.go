package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/target/storefront-admin/internal/data/pgxutil"
	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

var (
	_ ports.AuditTrail = (*AuditRepo)(nil)
	_ ports.AuditTrail = NoopAuditTrail{}
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 500
)

// AuditRepo stores audit events in Postgres.
type AuditRepo struct {
	DB  *sql.DB
	Now func() time.Time
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db, Now: time.Now}
}

// AuditQuery filters List. Zero values match everything.
type AuditQuery struct {
	Limit        int
	Actor        string
	ActionPrefix string
}

type auditRow struct {
	ID         uuid.UUID `db:"id"`
	OccurredAt time.Time `db:"occurred_at"`
	Actor      string    `db:"actor"`
	Role       string    `db:"role"`
	Action     string    `db:"action"`
	Subject    string    `db:"subject"`
	Detail     []byte    `db:"detail"`
}

func (r auditRow) toModel() model.AuditEvent {
	ev := model.AuditEvent{
		ID:         r.ID.String(),
		OccurredAt: r.OccurredAt,
		Actor:      r.Actor,
		Role:       r.Role,
		Action:     r.Action,
		Subject:    r.Subject,
	}
	if len(r.Detail) > 0 {
		ev.Detail = json.RawMessage(r.Detail)
	}
	return ev
}

// Record inserts ev, filling ID and OccurredAt when unset.
func (r *AuditRepo) Record(ctx context.Context, ev model.AuditEvent) error {
	if strings.TrimSpace(ev.Action) == "" {
		return apperrors.ValidationField("action", "action is required")
	}
	id := uuid.New()
	if ev.ID != "" {
		parsed, err := uuid.Parse(ev.ID)
		if err != nil {
			return apperrors.ValidationField("id", "id must be a UUID")
		}
		id = parsed
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = r.Now()
	}
	var detail any
	if len(ev.Detail) > 0 {
		detail = string(ev.Detail)
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO audit_events (id, occurred_at, actor, role, action, subject, detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)`,
		id, ev.OccurredAt.UTC(), ev.Actor, ev.Role, ev.Action, ev.Subject, detail)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", apperrors.MapDBError(err))
	}
	return nil
}

// Recent returns the newest events first.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	return r.List(ctx, AuditQuery{Limit: limit})
}

// List returns events matching q, newest first.
func (r *AuditRepo) List(ctx context.Context, q AuditQuery) ([]model.AuditEvent, error) {
	query, args := buildAuditQuery(q)
	rows, err := pgxutil.QueryStructs[auditRow](ctx, r.DB, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", apperrors.MapDBError(err))
	}
	out := make([]model.AuditEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func buildAuditQuery(q AuditQuery) (string, []any) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	var (
		where []string
		args  []any
	)
	if q.Actor != "" {
		args = append(args, q.Actor)
		where = append(where, fmt.Sprintf("actor = $%d", len(args)))
	}
	if q.ActionPrefix != "" {
		args = append(args, escapeLike(q.ActionPrefix)+"%")
		where = append(where, fmt.Sprintf("action LIKE $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT id, occurred_at, actor, role, action, subject, detail FROM audit_events")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	args = append(args, limit)
	fmt.Fprintf(&b, " ORDER BY occurred_at DESC, id LIMIT $%d", len(args))
	return b.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// NoopAuditTrail drops events. It is used when the audit database is disabled.
type NoopAuditTrail struct{}

func (NoopAuditTrail) Record(context.Context, model.AuditEvent) error { return nil }

func (NoopAuditTrail) Recent(context.Context, int) ([]model.AuditEvent, error) { return nil, nil }
