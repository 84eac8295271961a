package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/bizconf/pkg/db/pagination"
)

var (
	ErrInvalidAction    = errors.New("invalid_action")
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidTimeRange = errors.New("invalid_time_range")
)

type ListAuditLogRequest struct {
	pagination.Pagination
	CompanyID  string
	Action     string
	TargetType string
	TargetID   string
	ActorType  string
	StartAt    *time.Time
	EndAt      *time.Time
}

type ListAuditLogResponse struct {
	pagination.PageInfo
	AuditLogs []AuditLog `json:"auditLogs"`
}

type Service interface {
	// Record writes one audit entry. Failures are returned but callers
	// typically log and continue; auditing never blocks the mutation.
	Record(ctx context.Context, companyID string, actorID *string, action, targetType string, targetID *string, metadata map[string]any) error
	List(ctx context.Context, req ListAuditLogRequest) (ListAuditLogResponse, error)
}
