package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidRefresh     = errors.New("refresh token is invalid or expired")
)

// AuthService admin-console authentication.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user for login", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(user.UserID, user.Role, req.RememberMe, &dto.UserResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		JobTitle: user.JobTitle,
		IsPublic: user.IsPublic,
	})
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrInvalidRefresh
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		s.logger.Error("failed to load user for refresh", zap.Error(err))
		return nil, err
	}

	return s.tokenPair(user.UserID, user.Role, claims.RememberMe, &dto.UserResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		JobTitle: user.JobTitle,
		IsPublic: user.IsPublic,
	})
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load current user", zap.Error(err))
		return nil, err
	}
	return &dto.UserResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		JobTitle: user.JobTitle,
		IsPublic: user.IsPublic,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("failed to load user for password change", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedBy = &userID

	return s.repo.User.Update(ctx, user)
}

func (s *authService) tokenPair(userID, role string, rememberMe bool, user *dto.UserResponse) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(userID, role)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(userID, role, rememberMe)
	if err != nil {
		s.logger.Error("failed to generate refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         *user,
	}, nil
}
