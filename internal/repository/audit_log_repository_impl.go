package repository

import (
	"errors"

	"github.com/techcare/pro360-api/internal/domain/entity"
	domainRepo "github.com/techcare/pro360-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

// Find returns matching entries, newest first.
func (r *auditLogRepository) Find(db *gorm.DB, query domainRepo.AuditLogQuery) ([]entity.AuditLog, error) {
	tx := db.Model(&entity.AuditLog{})
	if query.Action != "" {
		tx = tx.Where("action = ?", query.Action)
	}
	if query.AdminID != nil {
		tx = tx.Where("admin_id = ?", *query.AdminID)
	}
	if query.Since != nil {
		tx = tx.Where("created_at >= ?", *query.Since)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	logs := make([]entity.AuditLog, 0)
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var auditLog entity.AuditLog
	if err := db.First(&auditLog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auditLog, nil
}
