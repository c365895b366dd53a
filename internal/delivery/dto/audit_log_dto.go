package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	AdminID   *uuid.UUID             `json:"adminId,omitempty"`
	Action    string                 `json:"action"`
	Entity    string                 `json:"entity,omitempty"`
	EntityID  string                 `json:"entityId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}

// AuditLogFilter narrows the admin audit trail listing. Zero values match everything.
type AuditLogFilter struct {
	Action  string
	AdminID *uuid.UUID
	Since   *time.Time
	Limit   int
}
