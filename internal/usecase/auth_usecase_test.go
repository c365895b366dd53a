package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/techcare/pro360-api/config"
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"
	"github.com/techcare/pro360-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memorySessionStore struct {
	sessions map[string]time.Duration
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]time.Duration{}}
}

func (s *memorySessionStore) key(adminID uuid.UUID, tokenID string) string {
	return adminID.String() + ":" + tokenID
}

func (s *memorySessionStore) Register(_ context.Context, adminID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.sessions[s.key(adminID, tokenID)] = ttl
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, adminID uuid.UUID, tokenID string) (bool, error) {
	_, ok := s.sessions[s.key(adminID, tokenID)]
	return ok, nil
}

func (s *memorySessionStore) Revoke(_ context.Context, adminID uuid.UUID, tokenID string) error {
	delete(s.sessions, s.key(adminID, tokenID))
	return nil
}

func newAuthUsecase(t *testing.T, secret string) (AuthUsecase, *gorm.DB, *jwt.JWTService, *memorySessionStore) {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: secret})
	sessions := newMemorySessionStore()
	uc := NewAuthUsecase(db, log, repository.NewAdminRepository(), jwtService, sessions,
		service.NewAuditService(log, repository.NewAuditLogRepository()))
	return uc, db, jwtService, sessions
}

func TestEnsureAdmin(t *testing.T) {
	uc, _, _, _ := newAuthUsecase(t, "secret")

	admin, created, err := uc.EnsureAdmin(context.Background(), " Admin@TechCare.com ", "admin123")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "admin@techcare.com", admin.Email)

	again, created, err := uc.EnsureAdmin(context.Background(), "admin@techcare.com", "other")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)
}

func TestLogin(t *testing.T) {
	uc, db, jwtService, sessions := newAuthUsecase(t, "secret")

	admin, _, err := uc.EnsureAdmin(context.Background(), "admin@techcare.com", "admin123")
	require.NoError(t, err)

	login, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "admin@techcare.com", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, admin.ID, login.Admin.ID)
	assert.Equal(t, "admin@techcare.com", login.Admin.Email)

	claims, err := jwtService.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	active, err := sessions.Exists(context.Background(), admin.ID, claims.TokenID())
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, int64(1), countAuditLogs(t, db, entity.AuditActionAdminLogin))
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	uc, _, _, _ := newAuthUsecase(t, "secret")

	_, _, err := uc.EnsureAdmin(context.Background(), "admin@techcare.com", "admin123")
	require.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), &dto.LoginRequest{Email: "admin@techcare.com", Password: "nope"})
	_, unknownEmail := uc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@techcare.com", Password: "admin123"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_MissingSecret(t *testing.T) {
	uc, _, _, _ := newAuthUsecase(t, "")

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "admin@techcare.com", Password: "admin123"})
	assert.ErrorIs(t, err, ErrServerMisconfigured)
}

func TestLogoutRevokesSession(t *testing.T) {
	uc, _, jwtService, sessions := newAuthUsecase(t, "secret")

	_, _, err := uc.EnsureAdmin(context.Background(), "admin@techcare.com", "admin123")
	require.NoError(t, err)
	login, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "admin@techcare.com", Password: "admin123"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(login.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), claims.AdminID, claims.TokenID()))

	active, err := sessions.Exists(context.Background(), claims.AdminID, claims.TokenID())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestGetProfile(t *testing.T) {
	uc, _, _, _ := newAuthUsecase(t, "secret")

	admin, _, err := uc.EnsureAdmin(context.Background(), "admin@techcare.com", "admin123")
	require.NoError(t, err)

	profile, err := uc.GetProfile(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@techcare.com", profile.Email)
	assert.False(t, profile.CreatedAt.IsZero())

	_, err = uc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
