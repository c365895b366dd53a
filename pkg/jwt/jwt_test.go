package jwt

import (
	"testing"
	"time"

	"github.com/techcare/pro360-api/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	adminID := uuid.New()

	token, tokenID, err := svc.GenerateToken(adminID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, tokenID, claims.TokenID())
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestDefaultExpiryIsThirtyDays(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	assert.Equal(t, 30*24*time.Hour, svc.GetExpiry())
}

func TestValidateToken_Failures(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		AdminID: uuid.New(),
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	foreignToken, _, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		wantExpired bool
	}{
		{name: "expired token", token: expiredToken, wantExpired: true},
		{name: "signed with another secret", token: foreignToken},
		{name: "garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
			assert.Equal(t, tt.wantExpired, IsExpired(err))
		})
	}
}

func TestMissingSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{})

	_, _, err := svc.GenerateToken(uuid.New())
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
