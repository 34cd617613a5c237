package auth

import (
	"testing"
	"time"
)

func testManager() *Manager {
	return &Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
		Issuer:     "portfolio-backend",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.NewAccessToken("admin")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("role = %q, want admin", claims.Role)
	}
	if claims.Issuer != "portfolio-backend" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
}

func TestParseWrongSecret(t *testing.T) {
	m := testManager()
	token, err := m.NewAccessToken("admin")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	other := testManager()
	other.Secret = []byte("different-secret")
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestParseExpired(t *testing.T) {
	m := testManager()
	m.AccessTTL = -1 * time.Minute

	token, err := m.NewAccessToken("admin")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}

func TestParseGarbage(t *testing.T) {
	m := testManager()
	if _, err := m.Parse("not.a.token"); err == nil {
		t.Fatal("expected parse failure for malformed token")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := ComparePassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "wrong-pass"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
