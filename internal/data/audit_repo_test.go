package data

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/testutil"
)

func TestBuildAuditQuery(t *testing.T) {
	q, args := buildAuditQuery(AuditQuery{})
	assert.Equal(t, "SELECT id, occurred_at, actor, role, action, subject, detail FROM audit_events ORDER BY occurred_at DESC, id LIMIT $1", q)
	assert.Equal(t, []any{defaultAuditLimit}, args)

	q, args = buildAuditQuery(AuditQuery{Limit: 10_000, Actor: "ann", ActionPrefix: "order_"})
	assert.Contains(t, q, "WHERE actor = $1 AND action LIKE $2")
	assert.Contains(t, q, "LIMIT $3")
	assert.Equal(t, []any{"ann", `order\_%`, maxAuditLimit}, args)
}

func TestNoopAuditTrail(t *testing.T) {
	var trail NoopAuditTrail
	require.NoError(t, trail.Record(context.Background(), model.AuditEvent{Action: "x"}))
	events, err := trail.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAuditRepo_RecordRejectsBlankAction(t *testing.T) {
	repo := &AuditRepo{Now: time.Now}
	err := repo.Record(context.Background(), model.AuditEvent{Actor: "ann"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuditRepo_RecordAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAuditRepo(db)
	ctx := context.Background()
	base := testutil.TestTime()

	require.NoError(t, repo.Record(ctx, model.AuditEvent{
		OccurredAt: base, Actor: "ann", Role: "Admin", Action: model.AuditLoginSucceeded,
	}))
	require.NoError(t, repo.Record(ctx, model.AuditEvent{
		OccurredAt: base.Add(time.Minute), Actor: "dan", Role: "Delivery", Action: "order.accept",
		Subject: "o-1", Detail: json.RawMessage(`{"status":"Accept"}`),
	}))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "order.accept", recent[0].Action)
	assert.JSONEq(t, `{"status":"Accept"}`, string(recent[0].Detail))
	_, err = uuid.Parse(recent[0].ID)
	assert.NoError(t, err)

	byActor, err := repo.List(ctx, AuditQuery{Actor: "ann"})
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, model.AuditLoginSucceeded, byActor[0].Action)

	orders, err := repo.List(ctx, AuditQuery{ActionPrefix: model.AuditOrderPrefix})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestAuditRepo_DuplicateIDConflicts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAuditRepo(db)
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, repo.Record(ctx, model.AuditEvent{ID: id, Action: "logout"}))
	err := repo.Record(ctx, model.AuditEvent{ID: id, Action: "logout"})
	assert.True(t, apperrors.IsConflict(err))
}
