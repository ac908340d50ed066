package response

import (
	"time"

	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
)

// SlotRequestResponse mirrors the read model, contact gating included:
// the email and phone pointers are already nil for anything that is
// not accepted.
type SlotRequestResponse struct {
	ID                uuid.UUID `json:"id"`
	ProfileID         uuid.UUID `json:"profileId"`
	ProfileName       string    `json:"profileName"`
	ProfileEmail      *string   `json:"profileEmail,omitempty"`
	ProfilePhone      *string   `json:"profilePhone,omitempty"`
	RequesterID       uuid.UUID `json:"requesterId"`
	RequesterName     string    `json:"requesterName"`
	RequesterPosition string    `json:"requesterPosition"`
	RequesterCompany  string    `json:"requesterCompany"`
	RequesterPhotoURL *string   `json:"requesterPhotoUrl,omitempty"`
	RequesterEmail    *string   `json:"requesterEmail,omitempty"`
	RequesterPhone    *string   `json:"requesterPhone,omitempty"`
	TimeSlot          string    `json:"timeSlot"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromNetworkingSlotView(v *queries.NetworkingSlotView) *SlotRequestResponse {
	return &SlotRequestResponse{
		ID:                v.ID,
		ProfileID:         v.ProfileID,
		ProfileName:       v.ProfileName,
		ProfileEmail:      v.ProfileEmail,
		ProfilePhone:      v.ProfilePhone,
		RequesterID:       v.RequesterID,
		RequesterName:     v.RequesterName,
		RequesterPosition: v.RequesterPosition,
		RequesterCompany:  v.RequesterCompany,
		RequesterPhotoURL: v.RequesterPhotoURL,
		RequesterEmail:    v.RequesterEmail,
		RequesterPhone:    v.RequesterPhone,
		TimeSlot:          v.TimeSlot,
		Message:           v.Message,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromNetworkingSlotViews(views []*queries.NetworkingSlotView) []*SlotRequestResponse {
	resps := make([]*SlotRequestResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromNetworkingSlotView(v))
	}
	return resps
}
