package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
)

func setupTestAuthService(t *testing.T) (AuthService, *mockUserRepo) {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-for-units",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 30 * 24 * time.Hour,
		},
	}
	repo, _, _ := newTestRepository()
	userRepo := repo.User.(*mockUserRepo)
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, zap.NewNop()), userRepo
}

func createTestUser(t *testing.T, userRepo *mockUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	user := &model.User{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	_ = userRepo.Create(context.Background(), user)
	return user
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	createTestUser(t, userRepo, "admin@example.org", "password123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.org",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login should succeed, got: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken must not be empty")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken must not be empty")
	}
	if result.User.Email != "admin@example.org" {
		t.Errorf("expected user email to round-trip, got %s", result.User.Email)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("expected ExpiresIn=900, got %d", result.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	createTestUser(t, userRepo, "admin@example.org", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.org",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.org",
		Password: "password123",
	})
	// Unknown email and wrong password must be indistinguishable.
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	createTestUser(t, userRepo, "admin@example.org", "password123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.org",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("Refresh should succeed, got: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refreshed AccessToken must not be empty")
	}
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	createTestUser(t, userRepo, "admin@example.org", "password123")

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.org",
		Password: "password123",
	})

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("an access token must not refresh, got %v", err)
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: "not-a-jwt",
	})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("expected ErrInvalidRefresh, got %v", err)
	}
}

func TestChangePassword_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	user := createTestUser(t, userRepo, "admin@example.org", "password123")

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpassword456",
	})
	if err != nil {
		t.Fatalf("ChangePassword should succeed, got: %v", err)
	}

	// Old password no longer works, new one does.
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "admin@example.org", Password: "password123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("the old password must stop working")
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "admin@example.org", Password: "newpassword456",
	}); err != nil {
		t.Errorf("the new password must work, got %v", err)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	user := createTestUser(t, userRepo, "admin@example.org", "password123")

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword456",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	user := createTestUser(t, userRepo, "admin@example.org", "password123")

	got, err := svc.GetCurrentUser(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if got.Email != "admin@example.org" || got.Role != "admin" {
		t.Errorf("unexpected user %+v", got)
	}

	if _, err := svc.GetCurrentUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
