package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

// AuditLogToResponse lifts the entity reference out of the metadata blob so
// clients can link an entry to its booking, staff member or payment.
func AuditLogToResponse(auditLog *entity.AuditLog) *dto.AuditLogResponse {
	if auditLog == nil {
		return nil
	}

	res := &dto.AuditLogResponse{
		ID:        auditLog.ID,
		AdminID:   auditLog.AdminID,
		Action:    auditLog.Action,
		CreatedAt: auditLog.CreatedAt,
	}
	if auditLog.Metadata != nil {
		res.Metadata = map[string]interface{}(auditLog.Metadata)
		res.Entity, _ = auditLog.Metadata["entity"].(string)
		res.EntityID, _ = auditLog.Metadata["entityId"].(string)
	}
	return res
}

func AuditLogsToResponses(auditLogs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(auditLogs))
	for i := range auditLogs {
		responses = append(responses, *AuditLogToResponse(&auditLogs[i]))
	}
	return responses
}
