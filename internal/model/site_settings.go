package model

import "time"

// SiteSettings maps the site_settings singleton row (settings_id always 1).
// Holds the admin-editable values that used to be hard-coded constants:
// SEO length limits and the care-work shift-type allow-list.
type SiteSettings struct {
	SettingsID        int16       `gorm:"primaryKey;default:1"               json:"-"`
	SEOTitleMax       int         `gorm:"column:seo_title_max;not null;default:60"        json:"seo_title_max"`
	SEODescriptionMax int         `gorm:"column:seo_description_max;not null;default:160" json:"seo_description_max"`
	CareShiftTypes    StringArray `gorm:"type:text[];not null"               json:"care_shift_types"`
	UpdatedAt         time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy         *string     `gorm:"type:uuid"                          json:"updated_by,omitempty"`
}

// TableName table name override.
func (SiteSettings) TableName() string { return "site_settings" }
