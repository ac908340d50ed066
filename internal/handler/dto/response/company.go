package response

import (
	"time"

	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CompanyResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	LogoURL        *string   `json:"logoUrl,omitempty"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	AccentColor    string    `json:"accentColor"`
	IsActive       bool      `json:"isActive"`
	EventsCount    int64     `json:"eventsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// View and response share field names, so the mapping is mechanical.
func FromCompanyView(v *queries.CompanyView) *CompanyResponse {
	var resp CompanyResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCompanyViews(views []*queries.CompanyView) []*CompanyResponse {
	resps := make([]*CompanyResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromCompanyView(v))
	}
	return resps
}
