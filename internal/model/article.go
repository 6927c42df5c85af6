package model

import "time"

// Article maps the articles table. Backs the admin rich-text editor and the public
// news/content pages. Content is stored as sanitised HTML.
type Article struct {
	ArticleID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"article_id"`
	Slug           string     `gorm:"type:varchar(200);not null;uniqueIndex"         json:"slug"`
	Title          string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string     `gorm:"type:text;not null"                             json:"content"`
	Excerpt        string     `gorm:"type:varchar(500);not null;default:''"          json:"excerpt"`
	Status         string     `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"` // draft | published
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	AuthorID       string     `gorm:"type:uuid;not null"                             json:"author_id"`
	SEOTitle       string     `gorm:"column:seo_title;type:varchar(200);not null;default:''"       json:"seo_title"`
	SEODescription string     `gorm:"column:seo_description;type:varchar(400);not null;default:''" json:"seo_description"`
	SEOKeywords    string     `gorm:"column:seo_keywords;type:varchar(400);not null;default:''"    json:"seo_keywords"`
	VersionedModel

	// Associations
	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

// TableName table name override.
func (Article) TableName() string { return "articles" }
