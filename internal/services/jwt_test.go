package services

import (
	"testing"

	"logic-looper-backend/internal/config"
)

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "test-secret"})

	token, err := svc.IssueToken("user-123")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("user ID = %q, want user-123", claims.UserID)
	}
	if claims.SessionID == "" {
		t.Error("session ID not set")
	}
	if claims.ExpiresAt == nil {
		t.Error("expiry not set")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecret: "secret-a"})
	verifier := NewJWTService(&config.Config{JWTSecret: "secret-b"})

	token, err := issuer.IssueToken("user-123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "test-secret"})

	for _, bad := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := svc.ValidateToken(bad); err == nil {
			t.Errorf("garbage token %q was accepted", bad)
		}
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "test-secret"})

	t1, err := svc.IssueToken("user-123")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := svc.IssueToken("user-123")
	if err != nil {
		t.Fatal(err)
	}

	c1, err := svc.ValidateToken(t1)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := svc.ValidateToken(t2)
	if err != nil {
		t.Fatal(err)
	}
	if c1.SessionID == c2.SessionID {
		t.Error("two logins produced the same session ID")
	}
}
