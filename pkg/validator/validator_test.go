package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ServiceType string `json:"serviceType" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Status      string `json:"status" validate:"omitempty,oneof=pending assigned"`
	Ignored     string `json:"-" validate:"max=1"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Email: "nope", Status: "bogus"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "serviceType is required", errs["serviceType"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "status must be one of: pending, assigned", errs["status"])
}

func TestValidRequestPasses(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sampleRequest{ServiceType: "Repair", Status: "pending"}))
	assert.Empty(t, v.FormatValidationErrors(nil))
}
