package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateStaffRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Phone    string   `json:"phone" validate:"required,max=50"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Location string   `json:"location" validate:"required,max=255"`
	Skills   []string `json:"skills"`
	Active   *bool    `json:"active"`
}

func (r *CreateStaffRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Location = strings.TrimSpace(r.Location)
	r.Skills = trimSkills(r.Skills)
}

// UpdateStaffRequest is a partial update; nil fields are left unchanged.
type UpdateStaffRequest struct {
	Name     *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Phone    *string  `json:"phone" validate:"omitnil,min=1,max=50"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	Location *string  `json:"location" validate:"omitnil,min=1,max=255"`
	Skills   []string `json:"skills"`
	Active   *bool    `json:"active"`
}

func (r *UpdateStaffRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Phone)
	trimPtr(r.Location)
	if r.Email != nil {
		*r.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Skills != nil {
		r.Skills = trimSkills(r.Skills)
	}
}

// Response DTOs

type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Location  string    `json:"location"`
	Skills    []string  `json:"skills"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// trimSkills keeps order and drops blank entries.
func trimSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
