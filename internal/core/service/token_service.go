package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// authClaims is the payload carried by every issued token.
type authClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed JWTs. Stateless: validation
// needs only the secret and the clock, never a store lookup.
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

func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		Roles: domain.RoleStrings(user.Roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) (string, []domain.Role, error) {
	claims := &authClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", nil, domain.ErrTokenExpired
		default:
			return "", nil, domain.ErrTokenInvalid
		}
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", nil, domain.ErrTokenInvalid
	}

	return claims.Subject, domain.ParseRoles(claims.Roles), nil
}
