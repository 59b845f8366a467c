package contact

import (
	"github.com/everydayventures/website/internal/api/sanitization"
	"github.com/everydayventures/website/internal/models"
)

// ContactRequest represents a contact form submission.
// Company is a honeypot that real visitors never see.
type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,contactemail"`
	Project string `form:"project" validate:"required,max=5000"`
	Company string `form:"company"`
}

// Sanitize cleans every field in place
func (r *ContactRequest) Sanitize() {
	r.Name = sanitization.SanitizeField(r.Name)
	r.Email = sanitization.SanitizeField(r.Email)
	r.Project = sanitization.SanitizeField(r.Project)
	r.Company = sanitization.SanitizeField(r.Company)
}

// IsSpam reports whether the honeypot field was filled in
func (r *ContactRequest) IsSpam() bool {
	return r.Company != ""
}

// ToInquiry converts the request into its domain model
func (r *ContactRequest) ToInquiry() models.Inquiry {
	return models.Inquiry{
		Name:    r.Name,
		Email:   r.Email,
		Project: r.Project,
	}
}
