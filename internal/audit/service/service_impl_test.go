package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/smallbiznis/bizconf/internal/audit/domain"
	"github.com/smallbiznis/bizconf/internal/audit/repository"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (auditdomain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auditdomain.AuditLog{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	svc := NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Clock: fake,
	})
	return svc, db, fake
}

func TestRecordWritesEntry(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	actor := "user-1"
	target := "cmp-1"
	require.NoError(t, svc.Record(ctx, "cmp-1", &actor, "company.update", "company", &target, map[string]any{
		"companyName": "Acme Corp",
	}))

	var entry auditdomain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "company.update", entry.Action)
	assert.Equal(t, string(auditdomain.ActorTypeUser), entry.ActorType)
	require.NotNil(t, entry.CompanyID)
	assert.Equal(t, "cmp-1", *entry.CompanyID)
	assert.Equal(t, "Acme Corp", entry.Metadata["companyName"])
}

func TestRecordDefaultsToSystemActor(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, "cmp-1", nil, "calendar.days.save", "business_days", nil, nil))

	var entry auditdomain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, string(auditdomain.ActorTypeSystem), entry.ActorType)
	assert.Nil(t, entry.ActorID)
	assert.Equal(t, "business_days", entry.TargetType)
}

func TestRecordMasksSensitiveMetadata(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, "cmp-1", nil, "apikey.rotate", "api_key", nil, map[string]any{
		"apiToken": "tok_abcdef123456",
		"label":    "primary",
	}))

	var entry auditdomain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "****3456", entry.Metadata["apiToken"])
	assert.Equal(t, "primary", entry.Metadata["label"])
}

func TestRecordRejectsEmptyAction(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.Record(context.Background(), "cmp-1", nil, "  ", "company", nil, nil)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidAction)
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		action := "company.update"
		if i%2 == 0 {
			action = "holiday.save"
		}
		require.NoError(t, svc.Record(ctx, "cmp-1", nil, action, "company", nil, nil))
		fake.Advance(time.Minute)
	}

	byAction, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageSize: 10},
		CompanyID:  "cmp-1",
		Action:     "holiday.save",
	})
	require.NoError(t, err)
	assert.Len(t, byAction.AuditLogs, 3)

	first, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageSize: 2},
	})
	require.NoError(t, err)
	require.Len(t, first.AuditLogs, 2)
	assert.True(t, first.HasMore)
	// Newest first.
	assert.True(t, first.AuditLogs[0].CreatedAt.After(first.AuditLogs[1].CreatedAt))

	second, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageSize: 2, PageToken: first.NextPageToken},
	})
	require.NoError(t, err)
	require.Len(t, second.AuditLogs, 2)
	assert.True(t, second.AuditLogs[0].CreatedAt.Before(first.AuditLogs[1].CreatedAt))
}

func TestListRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageToken: "not-base64!!"},
	})
	assert.ErrorIs(t, err, auditdomain.ErrInvalidPageToken)

	start := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.List(ctx, auditdomain.ListAuditLogRequest{
		StartAt: &start,
		EndAt:   &end,
	})
	assert.ErrorIs(t, err, auditdomain.ErrInvalidTimeRange)
}
