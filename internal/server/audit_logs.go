package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/smallbiznis/bizconf/internal/audit/domain"
	"github.com/smallbiznis/bizconf/pkg/db/pagination"
)

// recordAudit writes a best-effort audit entry. Failures are already
// logged by the audit service; the mutation response never depends on it.
func (s *Server) recordAudit(c *gin.Context, companyID, action, targetType string, targetID *string, metadata map[string]any) {
	var actorID *string
	if actor := strings.TrimSpace(c.GetHeader("X-Actor-Id")); actor != "" {
		actorID = &actor
	}
	_ = s.auditSvc.Record(c.Request.Context(), companyID, actorID, action, targetType, targetID, metadata)
}

func (s *Server) ListAuditLogs(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req := auditdomain.ListAuditLogRequest{
		Pagination: page,
		CompanyID:  strings.TrimSpace(c.Query("companyId")),
		Action:     strings.TrimSpace(c.Query("action")),
		TargetType: strings.TrimSpace(c.Query("targetType")),
		TargetID:   strings.TrimSpace(c.Query("targetId")),
		ActorType:  strings.TrimSpace(c.Query("actorType")),
	}

	if raw := strings.TrimSpace(c.Query("startAt")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			AbortWithError(c, newValidationError("startAt", "invalid_time", "invalid time"))
			return
		}
		req.StartAt = &parsed
	}
	if raw := strings.TrimSpace(c.Query("endAt")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			AbortWithError(c, newValidationError("endAt", "invalid_time", "invalid time"))
			return
		}
		req.EndAt = &parsed
	}

	resp, err := s.auditSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
