package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type ActorType string

const (
	ActorTypeUser   ActorType = "user"
	ActorTypeSystem ActorType = "system"
)

// AuditLog records one mutation against the configuration store.
// Append only; rows are never updated or deleted.
type AuditLog struct {
	ID         snowflake.ID      `gorm:"primaryKey;column:id" json:"id"`
	CompanyID  *string           `gorm:"index" json:"companyId,omitempty"`
	ActorType  string            `gorm:"not null" json:"actorType"`
	ActorID    *string           `json:"actorId,omitempty"`
	Action     string            `gorm:"not null;index" json:"action"`
	TargetType string            `gorm:"not null" json:"targetType"`
	TargetID   *string           `json:"targetId,omitempty"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata,omitempty"`
	IPAddress  *string           `json:"ipAddress,omitempty"`
	UserAgent  *string           `json:"userAgent,omitempty"`
	CreatedAt  time.Time         `gorm:"not null;index" json:"createdAt"`
}

func (AuditLog) TableName() string { return "audit_logs" }

type AuditCursor struct {
	ID        snowflake.ID
	CreatedAt time.Time
}

type ListFilter struct {
	CompanyID  string
	Action     string
	TargetType string
	TargetID   string
	ActorType  string
	StartAt    *time.Time
	EndAt      *time.Time
	Cursor     *AuditCursor
	Limit      int
}
