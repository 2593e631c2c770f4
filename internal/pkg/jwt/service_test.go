package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_GenerateAndValidate(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.GenerateToken("alice@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateToken("alice@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	issuer := NewHMACService("secret-a", time.Hour)
	verifier := NewHMACService("secret-b", time.Hour)

	tok, err := issuer.GenerateToken("alice@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := verifier.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_GarbageToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
