package utils

import (
	"os"
	"testing"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "late-loaded-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := CreateAdminToken("admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != "admin" || claims.Subject != "admin" {
		t.Errorf("unexpected claims: role=%q subject=%q", claims.Role, claims.Subject)
	}
}

// The secret is resolved per call, not at package init: a token signed under
// one secret must fail validation once the secret changes, and a secret set
// after process start (the dotenv case) must be honored.
func TestAdminTokenUsesCurrentSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateAdminToken("admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	os.Setenv("JWT_SECRET", "rotated-secret")
	defer os.Unsetenv("JWT_SECRET")

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed under the old secret must not validate under the new one")
	}

	fresh, err := CreateAdminToken("admin")
	if err != nil {
		t.Fatalf("create under rotated secret: %v", err)
	}
	if _, err := ValidateToken(fresh); err != nil {
		t.Errorf("token signed under the current secret must validate: %v", err)
	}
}
