package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/elegance-studio/salon-service/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
		AdminEmail:            "admin@elegance.salon",
		AdminPassword:         "s3cret",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)

	token, _, err := tm.GenerateToken("admin@elegance.salon")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "admin@elegance.salon" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("one-secret", 5).GenerateToken("admin@elegance.salon")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("other-secret", 5).ParseToken(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestAdminLogin(t *testing.T) {
	admin, err := NewAdmin(testAuthConfig())
	if err != nil {
		t.Fatalf("NewAdmin: %v", err)
	}

	if _, _, err := admin.Login("admin@elegance.salon", "s3cret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	// Email comparison is case-insensitive.
	if _, _, err := admin.Login("ADMIN@elegance.salon", "s3cret"); err != nil {
		t.Fatalf("Login with cased email: %v", err)
	}
	if _, _, err := admin.Login("admin@elegance.salon", "wrong"); err == nil {
		t.Fatal("expected error for wrong password")
	}
	if _, _, err := admin.Login("other@elegance.salon", "s3cret"); err == nil {
		t.Fatal("expected error for unknown email")
	}
}
