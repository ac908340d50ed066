package response

import (
	"time"

	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/queries"
	"eventlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	ID               uuid.UUID              `json:"id"`
	EventID          uuid.UUID              `json:"eventId"`
	FullName         string                 `json:"fullName"`
	Position         string                 `json:"position"`
	CompanyName      string                 `json:"companyName"`
	Bio              string                 `json:"bio"`
	Interests        []string               `json:"interests"`
	LinkedinURL      string                 `json:"linkedinUrl"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	PhotoURL         *string                `json:"photoUrl,omitempty"`
	CodeVerified     bool                   `json:"codeVerified"`
	AvailableSlots   []string               `json:"availableSlots"`
	ReceivedRequests []*SlotRequestResponse `json:"receivedRequests,omitempty"`
	SentRequests     []*SlotRequestResponse `json:"sentRequests,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		ID:               v.ID,
		EventID:          v.EventID,
		FullName:         v.FullName,
		Position:         v.Position,
		CompanyName:      v.CompanyName,
		Bio:              v.Bio,
		Interests:        v.Interests,
		LinkedinURL:      v.LinkedinURL,
		Email:            v.Email,
		Phone:            v.Phone,
		PhotoURL:         v.PhotoURL,
		CodeVerified:     v.CodeVerified,
		AvailableSlots:   v.AvailableSlots,
		ReceivedRequests: FromNetworkingSlotViews(v.ReceivedRequests),
		SentRequests:     FromNetworkingSlotViews(v.SentRequests),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromProfileViews(views []*queries.ProfileView) []*ProfileResponse {
	resps := make([]*ProfileResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromProfileView(v))
	}
	return resps
}

type DirectoryEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	Position       string    `json:"position"`
	CompanyName    string    `json:"companyName"`
	Bio            string    `json:"bio"`
	Interests      []string  `json:"interests"`
	LinkedinURL    string    `json:"linkedinUrl"`
	Phone          string    `json:"phone"`
	PhotoURL       *string   `json:"photoUrl,omitempty"`
	AvailableSlots []string  `json:"availableSlots"`
}

func FromDirectoryEntry(v *queries.DirectoryEntry) *DirectoryEntryResponse {
	var resp DirectoryEntryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type DirectoryResponse struct {
	Event    *EventResponse            `json:"event"`
	Profiles []*DirectoryEntryResponse `json:"profiles"`
}

func FromDirectoryView(v *queries.DirectoryView) *DirectoryResponse {
	profiles := make([]*DirectoryEntryResponse, 0, len(v.Profiles))
	for _, p := range v.Profiles {
		profiles = append(profiles, FromDirectoryEntry(p))
	}
	return &DirectoryResponse{
		Event:    FromEventView(v.Event),
		Profiles: profiles,
	}
}

// RegistrationResponse is the one place the access code travels in a
// response body; after this the attendee is expected to keep it.
type RegistrationResponse struct {
	ProfileID   uuid.UUID `json:"profileId"`
	AccessCode  string    `json:"accessCode"`
	CarriedOver bool      `json:"carriedOver"`
}

func FromRegistrationResult(r *commands.RegistrationResult) *RegistrationResponse {
	return &RegistrationResponse{
		ProfileID:   r.ProfileID,
		AccessCode:  r.AccessCode,
		CarriedOver: r.CarriedOver,
	}
}

type ExistingProfileResponse struct {
	ProfileID   uuid.UUID `json:"profileId"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Position    string    `json:"position"`
	CompanyName string    `json:"companyName"`
}

func FromProfileSnapshot(s *shared.ProfileSnapshot) *ExistingProfileResponse {
	return &ExistingProfileResponse{
		ProfileID:   s.ID,
		FullName:    s.FullName,
		Email:       s.Email,
		Position:    s.Position,
		CompanyName: s.CompanyName,
	}
}
