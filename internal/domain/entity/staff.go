package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Staff struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string                      `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string                      `gorm:"type:varchar(50);not null" json:"phone"`
	Email     string                      `gorm:"type:varchar(255)" json:"email,omitempty"`
	Location  string                      `gorm:"type:varchar(255);not null" json:"location"`
	Skills    datatypes.JSONSlice[string] `json:"skills"`
	Active    bool                        `gorm:"not null" json:"active"`
	CreatedAt time.Time                   `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	if s.Skills == nil {
		s.Skills = datatypes.JSONSlice[string]{}
	}
	return nil
}
