package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(&domain.User{
		Username: "alice",
		Roles:    []domain.Role{domain.RoleAdmin, domain.RoleHR},
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("expected compact JWT serialization, got %q", token)
	}

	sub, roles, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("expected subject alice, got %q", sub)
	}
	if len(roles) != 2 || roles[0] != domain.RoleAdmin || roles[1] != domain.RoleHR {
		t.Fatalf("unexpected roles: %v", roles)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Craft a token whose expiry has already elapsed.
	now := time.Now().Add(-2 * time.Hour)
	claims := authClaims{
		Roles: []string{"EMPLOYEE"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "bob",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, _, err := svc.Validate(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(&domain.User{Username: "carol", Roles: []domain.Role{domain.RoleEmployee}})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[2] = "AAAA" + parts[2][4:]
	tampered := strings.Join(parts, ".")

	if _, _, err := svc.Validate(tampered); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.User{Username: "dave", Roles: []domain.Role{domain.RoleEmployee}})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, _, err := verifier.Validate(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b"} {
		if _, _, err := svc.Validate(tok); err != domain.ErrTokenMalformed {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_UnknownRolesDropped(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := authClaims{
		Roles: []string{"SUPERUSER", "HR"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "eve",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, roles, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(roles) != 1 || roles[0] != domain.RoleHR {
		t.Fatalf("expected only HR to survive, got %v", roles)
	}
}
