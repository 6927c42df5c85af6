package jwt

import (
	"testing"
	"time"

	"github.com/TrialEnjoyer/yallburru-backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("expected UserID=user-1, got %s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("expected Role=admin, got %s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("expected TokenType=access, got %s", claims.TokenType)
	}
	if claims.Issuer != "yallburru" {
		t.Errorf("expected Issuer=yallburru, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI should not be empty")
	}
}

func TestGenerateRefreshToken_Default(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "editor", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("expected TokenType=refresh, got %s", claims.TokenType)
	}
	if claims.RememberMe != false {
		t.Error("expected RememberMe=false")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("default refresh TTL should be about 24h, got %v", ttl)
	}
}

func TestGenerateRefreshToken_RememberMe(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "editor", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken(rememberMe) failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.RememberMe != true {
		t.Error("expected RememberMe=true")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("rememberMe refresh TTL should be about 7d, got %v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err == nil {
		t.Error("parsing an invalid token should fail")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "different-secret-key",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken("user-1", "admin")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("a token signed with a different secret should not validate")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:              "test-secret-0123456789",
		AccessTokenTTL:         1 * time.Millisecond,
		RefreshTokenTTLDefault: 1 * time.Millisecond,
	})

	token, _ := m.GenerateAccessToken("user-1", "admin")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("an expired token should not validate")
	}
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}
