package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
)

// SettingsService site-settings singleton: the admin-editable SEO limits
// and care-work shift-type allow-list that the analyzer and projector read
// instead of hard-coded constants.
type SettingsService interface {
	Get(ctx context.Context) (*dto.SiteSettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSiteSettingsRequest, callerID string) (*dto.SiteSettingsResponse, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SiteSettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("failed to load site settings", zap.Error(err))
		return nil, err
	}
	return &dto.SiteSettingsResponse{
		SEOTitleMax:       settings.SEOTitleMax,
		SEODescriptionMax: settings.SEODescriptionMax,
		CareShiftTypes:    settings.CareShiftTypes,
		UpdatedAt:         settings.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSiteSettingsRequest, callerID string) (*dto.SiteSettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("failed to load site settings", zap.Error(err))
		return nil, err
	}

	if req.SEOTitleMax != nil {
		settings.SEOTitleMax = *req.SEOTitleMax
	}
	if req.SEODescriptionMax != nil {
		settings.SEODescriptionMax = *req.SEODescriptionMax
	}
	if req.CareShiftTypes != nil {
		settings.CareShiftTypes = *req.CareShiftTypes
	}
	settings.UpdatedBy = &callerID

	if err := s.repo.Settings.Update(ctx, settings); err != nil {
		s.logger.Error("failed to update site settings", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx)
}
