package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// SiteSettingsRepository site-settings singleton access.
type SiteSettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, settings *model.SiteSettings) error
}

// siteSettingsRepo GORM implementation of SiteSettingsRepository.
type siteSettingsRepo struct {
	db *gorm.DB
}

// NewSiteSettingsRepo creates a SiteSettingsRepository.
func NewSiteSettingsRepo(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepo{db: db}
}

func (r *siteSettingsRepo) Get(ctx context.Context) (*model.SiteSettings, error) {
	var settings model.SiteSettings
	err := r.db.WithContext(ctx).
		Where("settings_id = ?", 1).
		First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *siteSettingsRepo) Update(ctx context.Context, settings *model.SiteSettings) error {
	settings.SettingsID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
