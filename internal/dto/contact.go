package dto

// ContactRequest public contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"    binding:"required,min=2,max=100"`
	Email   string `json:"email"   binding:"required,email"`
	Phone   string `json:"phone"   binding:"omitempty,max=30"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

// ContactSubmissionResponse admin view of one submission.
type ContactSubmissionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Handled   bool   `json:"handled"`
	CreatedAt string `json:"created_at"`
}

// ContactListRequest admin list query.
type ContactListRequest struct {
	Handled *bool `form:"handled"`
	PaginationRequest
}
