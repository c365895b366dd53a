package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the API owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Staff{},
		&Booking{},
		&Service{},
		&Contact{},
		&Payment{},
		&AuditLog{},
	)
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
