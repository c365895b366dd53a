package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Phone         string `json:"phone" validate:"required,max=50"`
	Email         string `json:"email" validate:"omitempty,email"`
	City          string `json:"city" validate:"max=255"`
	Address       string `json:"address" validate:"required"`
	ServiceType   string `json:"serviceType" validate:"required,max=255"`
	PreferredDate string `json:"preferredDate" validate:"max=50"`
	PreferredTime string `json:"preferredTime" validate:"max=50"`
	PaymentMethod string `json:"paymentMethod" validate:"max=20"`
}

// Normalize trims every field so whitespace-only values fail the required checks.
func (r *CreateBookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.City = strings.TrimSpace(r.City)
	r.Address = strings.TrimSpace(r.Address)
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.PreferredTime = strings.TrimSpace(r.PreferredTime)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
}

type AssignStaffRequest struct {
	StaffID string `json:"staffId" validate:"required,uuid"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending assigned completed cancelled"`
}

// Response DTOs

type StaffSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
}

type BookingResponse struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email,omitempty"`
	City            string        `json:"city,omitempty"`
	Address         string        `json:"address"`
	ServiceType     string        `json:"serviceType"`
	PreferredDate   string        `json:"preferredDate,omitempty"`
	PreferredTime   string        `json:"preferredTime,omitempty"`
	Status          string        `json:"status"`
	AssignedStaffID *uuid.UUID    `json:"assignedStaffId,omitempty"`
	AssignedStaff   *StaffSummary `json:"assignedStaff"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
