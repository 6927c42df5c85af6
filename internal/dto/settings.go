package dto

// SiteSettingsResponse current site settings.
type SiteSettingsResponse struct {
	SEOTitleMax       int      `json:"seo_title_max"`
	SEODescriptionMax int      `json:"seo_description_max"`
	CareShiftTypes    []string `json:"care_shift_types"`
	UpdatedAt         string   `json:"updated_at"`
}

// UpdateSiteSettingsRequest admin settings update; nil fields are unchanged.
type UpdateSiteSettingsRequest struct {
	SEOTitleMax       *int      `json:"seo_title_max"       binding:"omitempty,min=10,max=200"`
	SEODescriptionMax *int      `json:"seo_description_max" binding:"omitempty,min=50,max=500"`
	CareShiftTypes    *[]string `json:"care_shift_types"`
}
