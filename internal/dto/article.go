package dto

// ── Article requests ──

// CreateArticleRequest admin article creation.
type CreateArticleRequest struct {
	Slug           string `json:"slug"            binding:"required,min=2,max=200"`
	Title          string `json:"title"           binding:"required,min=2,max=200"`
	Content        string `json:"content"         binding:"required"`
	Excerpt        string `json:"excerpt"         binding:"omitempty,max=500"`
	SEOTitle       string `json:"seo_title"       binding:"omitempty,max=200"`
	SEODescription string `json:"seo_description" binding:"omitempty,max=400"`
	SEOKeywords    string `json:"seo_keywords"    binding:"omitempty,max=400"`
}

// UpdateArticleRequest admin article update; nil fields are left unchanged.
type UpdateArticleRequest struct {
	Slug           *string `json:"slug"            binding:"omitempty,min=2,max=200"`
	Title          *string `json:"title"           binding:"omitempty,min=2,max=200"`
	Content        *string `json:"content"`
	Excerpt        *string `json:"excerpt"         binding:"omitempty,max=500"`
	SEOTitle       *string `json:"seo_title"       binding:"omitempty,max=200"`
	SEODescription *string `json:"seo_description" binding:"omitempty,max=400"`
	SEOKeywords    *string `json:"seo_keywords"    binding:"omitempty,max=400"`
}

// ArticleListRequest list query.
type ArticleListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
	PaginationRequest
}

// ── Article responses ──

// ArticleResponse full article.
type ArticleResponse struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Excerpt        string    `json:"excerpt"`
	Status         string    `json:"status"`
	PublishedAt    *string   `json:"published_at,omitempty"`
	AuthorName     string    `json:"author_name,omitempty"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	SEOKeywords    string    `json:"seo_keywords"`
	SEOCheck       *SEOCheck `json:"seo_check,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// ArticleBrief list-row article (content omitted).
type ArticleBrief struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Excerpt     string  `json:"excerpt"`
	Status      string  `json:"status"`
	PublishedAt *string `json:"published_at,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

// SEOCheck length check result against the configured limits.
type SEOCheck struct {
	TitleLength       int  `json:"title_length"`
	TitleMax          int  `json:"title_max"`
	TitleOK           bool `json:"title_ok"`
	DescriptionLength int  `json:"description_length"`
	DescriptionMax    int  `json:"description_max"`
	DescriptionOK     bool `json:"description_ok"`
}
