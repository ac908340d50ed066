package request

import (
	"github.com/google/uuid"
)

type RequestSlotRequest struct {
	AccessCode string    `json:"access_code" binding:"required"`
	ProfileID  uuid.UUID `json:"profile_id" binding:"required"`
	TimeSlot   string    `json:"time_slot" binding:"required"`
	Message    string    `json:"message"`
}

type DecideSlotRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
	Status     string `json:"status" binding:"required"`
}
