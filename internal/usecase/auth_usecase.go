package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/techcare/pro360-api/internal/converter"
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/domain/repository"
	"github.com/techcare/pro360-api/internal/service"
	"github.com/techcare/pro360-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrAdminExists         = errors.New("admin already exists")
	ErrServerMisconfigured = errors.New("server configuration error")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, adminID uuid.UUID, tokenID string) error
	GetProfile(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) (*dto.AdminResponse, bool, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
	auditService service.AuditService

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !u.jwtService.Configured() {
		u.log.Error("JWT secret is not configured")
		return nil, ErrServerMisconfigured
	}

	admin, err := u.adminRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}

	// Compare against a throwaway hash when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	hash := u.dummyPasswordHash()
	if admin != nil {
		hash = []byte(admin.Password)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil || admin == nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateToken(admin.ID)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.Register(ctx, admin.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to register admin session: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &admin.ID, entity.AuditActionAdminLogin, "admin_session", tokenID, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the login for audit log errors
	}

	u.log.WithField("admin_id", admin.ID).Info("Admin logged in")

	return &dto.LoginResponse{
		Token: token,
		Admin: dto.AdminSummary{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, adminID uuid.UUID, tokenID string) error {
	if err := u.sessionStore.Revoke(ctx, adminID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke admin session: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &adminID, entity.AuditActionAdminLogout, "admin_session", tokenID, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) GetProfile(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := u.adminRepo.FindByID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	return converter.AdminToResponse(admin), nil
}

// EnsureAdmin creates the admin account if no admin has the email yet.
// The bool result reports whether a new account was created.
func (u *authUsecase) EnsureAdmin(ctx context.Context, email, password string) (*dto.AdminResponse, bool, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, false, ErrInvalidCredentials
	}

	existing, err := u.adminRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, false, err
	}
	if existing != nil {
		return converter.AdminToResponse(existing), false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, false, err
	}

	admin := &entity.Admin{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := u.adminRepo.Create(u.db.WithContext(ctx), admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, ErrAdminExists
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, false, err
	}

	u.log.WithField("email", admin.Email).Info("Admin created")

	return converter.AdminToResponse(admin), true, nil
}

func (u *authUsecase) dummyPasswordHash() []byte {
	u.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash dummy password: %+v", err)
			return
		}
		u.dummyHash = hash
	})
	return u.dummyHash
}
