package dto

// ── Auth responses ──

// TokenResponse token pair response.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}

// ── User responses ──

// UserResponse user info (sensitive fields stripped).
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JobTitle string `json:"job_title,omitempty"`
	IsPublic bool   `json:"is_public"`
}

// StaffProfileResponse public "our people" profile.
type StaffProfileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	JobTitle  string `json:"job_title,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ── Pagination ──

// PaginationRequest common paging parameters.
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage returns the page number with its default applied.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize returns the page size with its default applied.
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}
