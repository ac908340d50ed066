package event

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("event name is required")
	ErrEndBeforeStart   = errors.New("end date must not be before start date")
	ErrEndTimeNotAfter  = errors.New("end time must be after start time")
	ErrEmptyEventCode   = errors.New("event code is required")
	ErrInvalidEventCode = errors.New("event code must be 8 uppercase alphanumeric characters")
)

var eventCodeRegex = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// Event is a single company-hosted gathering. The schedule fields that
// matter to slot booking are endTime and networkingHours; everything
// else is descriptive.
type Event struct {
	id              uuid.UUID
	companyID       uuid.UUID
	name            string
	eventCode       string
	description     string
	startDate       time.Time
	endDate         time.Time
	startTime       TimeOfDay
	endTime         TimeOfDay
	networkingHours NetworkingHours
	location        string
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEvent(
	companyID uuid.UUID,
	name, eventCode, description string,
	startDate, endDate time.Time,
	startTime, endTime TimeOfDay,
	networkingHours NetworkingHours,
	location string,
) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if eventCode == "" {
		return nil, ErrEmptyEventCode
	}
	if !eventCodeRegex.MatchString(eventCode) {
		return nil, ErrInvalidEventCode
	}
	if endDate.Before(startDate) {
		return nil, ErrEndBeforeStart
	}
	if !startTime.Before(endTime) {
		return nil, ErrEndTimeNotAfter
	}

	return &Event{
		id:              uuid.New(),
		companyID:       companyID,
		name:            name,
		eventCode:       eventCode,
		description:     strings.TrimSpace(description),
		startDate:       startDate,
		endDate:         endDate,
		startTime:       startTime,
		endTime:         endTime,
		networkingHours: networkingHours,
		location:        strings.TrimSpace(location),
		isActive:        true,
	}, nil
}

func ReconstructEvent(
	id, companyID uuid.UUID,
	name, eventCode, description string,
	startDate, endDate time.Time,
	startTime, endTime TimeOfDay,
	networkingHours NetworkingHours,
	location string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:              id,
		companyID:       companyID,
		name:            name,
		eventCode:       eventCode,
		description:     description,
		startDate:       startDate,
		endDate:         endDate,
		startTime:       startTime,
		endTime:         endTime,
		networkingHours: networkingHours,
		location:        location,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// NetworkingSlots lists the bookable slot labels for this event.
func (e *Event) NetworkingSlots() []string {
	return NetworkingSlots(e.endTime, e.networkingHours)
}

func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.startDate.Before(now.Truncate(24 * time.Hour))
}

func (e *Event) IsPast(now time.Time) bool {
	return e.endDate.Before(now.Truncate(24 * time.Hour))
}

func (e *Event) ID() uuid.UUID                   { return e.id }
func (e *Event) CompanyID() uuid.UUID            { return e.companyID }
func (e *Event) Name() string                    { return e.name }
func (e *Event) EventCode() string               { return e.eventCode }
func (e *Event) Description() string             { return e.description }
func (e *Event) StartDate() time.Time            { return e.startDate }
func (e *Event) EndDate() time.Time              { return e.endDate }
func (e *Event) StartTime() TimeOfDay            { return e.startTime }
func (e *Event) EndTime() TimeOfDay              { return e.endTime }
func (e *Event) Hours() NetworkingHours          { return e.networkingHours }
func (e *Event) Location() string                { return e.location }
func (e *Event) IsActive() bool                  { return e.isActive }
func (e *Event) CreatedAt() time.Time            { return e.createdAt }
func (e *Event) UpdatedAt() time.Time            { return e.updatedAt }
