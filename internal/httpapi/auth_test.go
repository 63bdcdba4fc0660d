package httpapi

import (
	"testing"
	"time"

	"invenpro/backend/internal/domain"
)

func TestAuthManager_LoginAndParseToken(t *testing.T) {
	auth := NewAuthManager("unit-test-secret", time.Hour)
	if err := auth.SeedUser("Admin", "admin123", "admin"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp, err := auth.Login(domain.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Role != "admin" {
		t.Fatalf("expected admin role, got %q", resp.Role)
	}

	actor, err := auth.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if actor.Username != "admin" || actor.Role != "admin" {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestAuthManager_LoginWrongPassword(t *testing.T) {
	auth := NewAuthManager("unit-test-secret", time.Hour)
	if err := auth.SeedUser("staff", "staff123", "staff"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := auth.Login(domain.LoginRequest{Username: "staff", Password: "nope"}); err == nil {
		t.Fatal("expected login to fail with wrong password")
	}
	if _, err := auth.Login(domain.LoginRequest{Username: "ghost", Password: "staff123"}); err == nil {
		t.Fatal("expected login to fail for unknown user")
	}
}

func TestAuthManager_ParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewAuthManager("secret-one", time.Hour)
	if err := issuer.SeedUser("admin", "admin123", "admin"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	resp, err := issuer.Login(domain.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	verifier := NewAuthManager("secret-two", time.Hour)
	if _, err := verifier.ParseToken(resp.AccessToken); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestAuthManager_SeedUserValidation(t *testing.T) {
	auth := NewAuthManager("unit-test-secret", time.Hour)
	if err := auth.SeedUser("", "pw", "staff"); err == nil {
		t.Fatal("expected blank username to be rejected")
	}
	if err := auth.SeedUser("staff", "   ", "staff"); err == nil {
		t.Fatal("expected blank password to be rejected")
	}
}
