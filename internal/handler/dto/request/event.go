package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("date must be formatted YYYY-MM-DD")

const dateLayout = "2006-01-02"

type CreateEventRequest struct {
	CompanyID       uuid.UUID `json:"company_id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	StartDate       string    `json:"start_date" binding:"required"`
	EndDate         string    `json:"end_date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required"`
	EndTime         string    `json:"end_time" binding:"required"`
	NetworkingHours float64   `json:"networking_hours"`
	Location        string    `json:"location"`
}

func (r *CreateEventRequest) Dates() (start, end time.Time, err error) {
	return parseDates(r.StartDate, r.EndDate)
}

type UpdateEventRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         string  `json:"end_date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
	NetworkingHours float64 `json:"networking_hours"`
	Location        string  `json:"location"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEventRequest) Dates() (start, end time.Time, err error) {
	return parseDates(r.StartDate, r.EndDate)
}

func parseDates(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return start, end, nil
}
