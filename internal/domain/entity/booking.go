package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAssigned  BookingStatus = "assigned"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the four booking states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAssigned, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a customer's service request from the public site.
// AssignedStaffID is not a foreign key: deleting staff leaves the reference in place.
type Booking struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Phone           string        `gorm:"type:varchar(50);not null" json:"phone"`
	Email           string        `gorm:"type:varchar(255)" json:"email,omitempty"`
	City            string        `gorm:"type:varchar(255)" json:"city,omitempty"`
	Address         string        `gorm:"type:text;not null" json:"address"`
	ServiceType     string        `gorm:"type:varchar(255);not null" json:"serviceType"`
	PreferredDate   string        `gorm:"type:varchar(50)" json:"preferredDate,omitempty"`
	PreferredTime   string        `gorm:"type:varchar(50)" json:"preferredTime,omitempty"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AssignedStaffID *uuid.UUID    `gorm:"type:uuid;index" json:"assignedStaffId"`
	PaymentMethod   string        `gorm:"type:varchar(20)" json:"paymentMethod,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	AssignedStaff *Staff `gorm:"foreignKey:AssignedStaffID" json:"assignedStaff"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// AssignTo records the staff member and moves the booking to assigned,
// whatever state it was in before.
func (b *Booking) AssignTo(staffID uuid.UUID) {
	b.AssignedStaffID = &staffID
	b.Status = BookingStatusAssigned
}
