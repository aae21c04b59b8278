package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

const defaultTokenTTL = 8 * time.Hour

// sessionTokenClaims is the wire shape of the JWT payload.
type sessionTokenClaims struct {
	UserID       uint     `json:"user_id"`
	Username     string   `json:"username"`
	Role         string   `json:"global_role"`
	AssignedApps []string `json:"assigned_apps"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. The secret is loaded
// once at process start; rotation is out of scope.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Sign(claims ports.SessionClaims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionTokenClaims{
		UserID:       claims.UserID,
		Username:     claims.Username,
		Role:         string(claims.Role),
		AssignedApps: claims.AssignedApps,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (*ports.SessionClaims, error) {
	var claims sessionTokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if claims.UserID == 0 || !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &ports.SessionClaims{
		UserID:       claims.UserID,
		Username:     claims.Username,
		Role:         role,
		AssignedApps: claims.AssignedApps,
	}, nil
}
