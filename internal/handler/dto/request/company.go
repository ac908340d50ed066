package request

import (
	"eventlink/internal/domain/company"
)

// Brand color defaults applied when a company is created without
// explicit colors.
const (
	defaultPrimaryColor   = "#1E3A8A"
	defaultSecondaryColor = "#3B82F6"
	defaultAccentColor    = "#F59E0B"
)

type CreateCompanyRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Industry       string  `json:"industry" binding:"required"`
	LogoURL        *string `json:"logo_url,omitempty" binding:"omitempty,url"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	AccentColor    string  `json:"accent_color"`
}

func (r *CreateCompanyRequest) ToDomain() (*company.Company, error) {
	return company.NewCompany(
		r.Name, r.Description, r.Industry, r.LogoURL,
		orDefault(r.PrimaryColor, defaultPrimaryColor),
		orDefault(r.SecondaryColor, defaultSecondaryColor),
		orDefault(r.AccentColor, defaultAccentColor),
	)
}

type UpdateCompanyRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Industry       string  `json:"industry" binding:"required"`
	LogoURL        *string `json:"logo_url,omitempty" binding:"omitempty,url"`
	PrimaryColor   string  `json:"primary_color" binding:"required"`
	SecondaryColor string  `json:"secondary_color" binding:"required"`
	AccentColor    string  `json:"accent_color" binding:"required"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
