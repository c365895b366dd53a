package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   *uuid.UUID        `gorm:"type:uuid;index" json:"adminId,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Admin actions recorded in the audit trail
const (
	AuditActionAdminLogin    = "admin.login"
	AuditActionAdminLogout   = "admin.logout"
	AuditActionBookingAssign = "booking.assign"
	AuditActionBookingStatus = "booking.status"
	AuditActionStaffCreate   = "staff.create"
	AuditActionStaffUpdate   = "staff.update"
	AuditActionStaffDelete   = "staff.delete"
	AuditActionServiceCreate = "service.create"
	AuditActionServiceUpdate = "service.update"
	AuditActionServiceDelete = "service.delete"
	AuditActionPaymentStatus = "payment.status"
	AuditActionContactRead   = "contact.read"
)
