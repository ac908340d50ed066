package response

import (
	"time"

	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type CompanyBrandResponse struct {
	Name           string  `json:"name"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
	AccentColor    string  `json:"accentColor"`
}

type EventResponse struct {
	ID              uuid.UUID            `json:"id"`
	CompanyID       uuid.UUID            `json:"companyId"`
	Company         CompanyBrandResponse `json:"company"`
	Name            string               `json:"name"`
	EventCode       string               `json:"eventCode"`
	Description     string               `json:"description"`
	StartDate       string               `json:"startDate"`
	EndDate         string               `json:"endDate"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	NetworkingHours float64              `json:"networkingHours"`
	Location        string               `json:"location"`
	IsActive        bool                 `json:"isActive"`
	NetworkingSlots []string             `json:"networkingSlots"`
	ProfilesCount   int64                `json:"profilesCount"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:        v.ID,
		CompanyID: v.CompanyID,
		Company: CompanyBrandResponse{
			Name:           v.Company.Name,
			LogoURL:        v.Company.LogoURL,
			PrimaryColor:   v.Company.PrimaryColor,
			SecondaryColor: v.Company.SecondaryColor,
			AccentColor:    v.Company.AccentColor,
		},
		Name:            v.Name,
		EventCode:       v.EventCode,
		Description:     v.Description,
		StartDate:       v.StartDate.Format(dateLayout),
		EndDate:         v.EndDate.Format(dateLayout),
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		NetworkingHours: v.NetworkingHours,
		Location:        v.Location,
		IsActive:        v.IsActive,
		NetworkingSlots: v.NetworkingSlots,
		ProfilesCount:   v.ProfilesCount,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	resps := make([]*EventResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromEventView(v))
	}
	return resps
}
