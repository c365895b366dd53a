package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/domain/repository"
	"github.com/techcare/pro360-api/internal/service"
	"github.com/techcare/pro360-api/pkg/jwt"
	"github.com/techcare/pro360-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type contextKey string

const (
	AdminKey   contextKey = "admin"
	TokenIDKey contextKey = "token_id"
)

var bearerPattern = regexp.MustCompile(`(?i)^bearer\s+(.+)$`)

type AuthMiddleware struct {
	db           *gorm.DB
	log          *logrus.Logger
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
	adminRepo    repository.AdminRepository
}

func NewAuthMiddleware(
	db *gorm.DB,
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
	adminRepo repository.AdminRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		db:           db,
		log:          log,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		adminRepo:    adminRepo,
	}
}

// Authenticate resolves the bearer token to an admin and stores it in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractBearerToken(r.Header.Get("Authorization"))
		if tokenString == "" {
			response.Unauthorized(w, "Not authorized, no token provided")
			return
		}

		if !m.jwtService.Configured() {
			m.log.Error("JWT secret is not configured")
			response.InternalServerError(w, "Server configuration error")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if jwt.IsExpired(err) {
				response.Unauthorized(w, "Token expired")
				return
			}
			response.Unauthorized(w, "Invalid token")
			return
		}

		if claims.AdminID == uuid.Nil {
			response.Unauthorized(w, "Invalid token format")
			return
		}

		// Check the session registry (not revoked by logout)
		active, err := m.sessionStore.Exists(r.Context(), claims.AdminID, claims.TokenID())
		if err != nil {
			m.log.Warnf("Failed to check admin session: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !active {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		admin, err := m.adminRepo.FindByID(m.db.WithContext(r.Context()), claims.AdminID)
		if err != nil {
			m.log.Warnf("Failed to find admin: %+v", err)
			response.InternalServerError(w, "Authentication error")
			return
		}
		if admin == nil {
			response.Unauthorized(w, "Admin not found")
			return
		}

		ctx := context.WithValue(r.Context(), AdminKey, admin)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(header string) string {
	match := bearerPattern.FindStringSubmatch(strings.TrimSpace(header))
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// GetAdminFromContext extracts the authenticated admin from context
func GetAdminFromContext(ctx context.Context) (*entity.Admin, bool) {
	admin, ok := ctx.Value(AdminKey).(*entity.Admin)
	return admin, ok && admin != nil
}

// GetAdminIDFromContext extracts the authenticated admin ID from context
func GetAdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	admin, ok := GetAdminFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return admin.ID, true
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
