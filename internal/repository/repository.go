package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	User         UserRepository
	Shift        ShiftRepository
	Article      ArticleRepository
	Contact      ContactRepository
	Notification NotificationRepository
	Settings     SiteSettingsRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Shift:        NewShiftRepo(db),
		Article:      NewArticleRepo(db),
		Contact:      NewContactRepo(db),
		Notification: NewNotificationRepo(db),
		Settings:     NewSiteSettingsRepo(db),
	}
}
