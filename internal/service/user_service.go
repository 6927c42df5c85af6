package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
)

// UserService staff accounts and public team profiles.
type UserService interface {
	List(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error)
	ListPublicProfiles(ctx context.Context) ([]dto.StaffProfileResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error) {
	offset := (page - 1) * pageSize
	users, total, err := s.repo.User.List(ctx, offset, pageSize)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:       u.UserID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			JobTitle: u.JobTitle,
			IsPublic: u.IsPublic,
		})
	}
	return out, total, nil
}

// ListPublicProfiles returns the profiles shown on the public team page.
// Only users who opted in with IsPublic appear, ordered by name.
func (s *userService) ListPublicProfiles(ctx context.Context) ([]dto.StaffProfileResponse, error) {
	users, err := s.repo.User.ListPublic(ctx)
	if err != nil {
		s.logger.Error("failed to list public profiles", zap.Error(err))
		return nil, err
	}

	out := make([]dto.StaffProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.StaffProfileResponse{
			ID:        u.UserID,
			Name:      u.Name,
			JobTitle:  u.JobTitle,
			Bio:       u.Bio,
			AvatarURL: u.AvatarURL,
		})
	}
	return out, nil
}
