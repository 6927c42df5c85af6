package model

// User maps the users table. Staff accounts double as "our people" profiles when
// IsPublic is set.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"` // admin | editor | staff
	Phone        string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	JobTitle     string `gorm:"type:varchar(100)"                              json:"job_title,omitempty"`
	Bio          string `gorm:"type:text"                                      json:"bio,omitempty"`
	AvatarURL    string `gorm:"type:varchar(500)"                              json:"avatar_url,omitempty"`
	IsPublic     bool   `gorm:"not null;default:false"                         json:"is_public"`
	VersionedModel
}

// TableName table name override.
func (User) TableName() string { return "users" }
