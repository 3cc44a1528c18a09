package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bouvin87/System-by-Sections/internal/config"
	"github.com/bouvin87/System-by-Sections/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenResult is an issued operator session token.
type TokenResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService issues operator session tokens. Operators identify by name
// only; there are no accounts on the shop floor terminals.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// IssueToken creates a signed token for one operator name.
func (s *AuthService) IssueToken(operatorName string) (*TokenResult, error) {
	operatorName = strings.TrimSpace(operatorName)
	if operatorName == "" {
		return nil, fmt.Errorf("operator name is required")
	}

	expire := s.cfg.JWT.AccessTokenExpire
	if expire <= 0 {
		expire = 12 * time.Hour
	}
	now := time.Now()
	expiresAt := now.Add(expire)

	claims := middleware.JWTClaims{
		OperatorID:   uuid.New().String()[:32],
		OperatorName: operatorName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &TokenResult{Token: signed, ExpiresAt: expiresAt}, nil
}
