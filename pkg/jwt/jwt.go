package jwt

import (
	"errors"
	"time"

	"github.com/techcare/pro360-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

type Claims struct {
	AdminID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenID returns the jti used to key the admin session.
func (c *Claims) TokenID() string {
	return c.ID
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// Configured reports whether a signing secret is available.
func (s *JWTService) Configured() bool {
	return s.config.Secret != ""
}

func (s *JWTService) GenerateToken(adminID uuid.UUID) (string, string, error) {
	if !s.Configured() {
		return "", "", ErrMissingSecret
	}

	now := time.Now()
	tokenID := uuid.New().String()
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   adminID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.GetExpiry())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if !s.Configured() {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

func (s *JWTService) GetExpiry() time.Duration {
	if s.config.Expiry <= 0 {
		return 30 * 24 * time.Hour
	}
	return s.config.Expiry
}
