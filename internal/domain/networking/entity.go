package networking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfRequest     = errors.New("cannot request a slot with yourself")
	ErrInvalidDecision = errors.New("decision must be accepted or rejected")
	ErrInvalidStatus   = errors.New("invalid status")
)

// SlotRequest records one attendee (requester) asking another (profile,
// the target) for a specific networking slot. At most one request can
// exist per (target, time slot) pair regardless of requester: the
// first requester claims the slot. Requests are never deleted, so a
// cancelled or rejected request keeps holding the slot.
type SlotRequest struct {
	id          uuid.UUID
	profileID   uuid.UUID // target being requested
	requesterID uuid.UUID
	timeSlot    string
	message     string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSlotRequest takes the slot label as given. The target's declared
// available_slots list is the sole gate on what can be requested, so
// labels that would never come out of the slot generator still book if
// the target declared them.
func NewSlotRequest(profileID, requesterID uuid.UUID, timeSlot, message string) (*SlotRequest, error) {
	if profileID == requesterID {
		return nil, ErrSelfRequest
	}

	return &SlotRequest{
		id:          uuid.New(),
		profileID:   profileID,
		requesterID: requesterID,
		timeSlot:    timeSlot,
		message:     strings.TrimSpace(message),
		status:      StatusPending,
	}, nil
}

func ReconstructSlotRequest(
	id, profileID, requesterID uuid.UUID,
	timeSlot, message string,
	status Status,
	createdAt, updatedAt time.Time,
) *SlotRequest {
	return &SlotRequest{
		id:          id,
		profileID:   profileID,
		requesterID: requesterID,
		timeSlot:    timeSlot,
		message:     message,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Decide applies the target's decision. No guard against re-deciding a
// resolved request: a second decision overwrites the first.
func (r *SlotRequest) Decide(decision Status) error {
	if decision != StatusAccepted && decision != StatusRejected {
		return ErrInvalidDecision
	}
	r.status = decision
	return nil
}

// Cancel moves the request to cancelled from any prior status.
func (r *SlotRequest) Cancel() {
	r.status = StatusCancelled
}

// IsParty reports whether callerID is the requester or the target,
// the two identities allowed to cancel.
func (r *SlotRequest) IsParty(callerID uuid.UUID) bool {
	return callerID == r.requesterID || callerID == r.profileID
}

// DisclosesContactInfo gates the privacy rule: requester and target
// email/phone are visible to readers only once a request is accepted.
func (r *SlotRequest) DisclosesContactInfo() bool {
	return r.status == StatusAccepted
}

func (r *SlotRequest) ID() uuid.UUID          { return r.id }
func (r *SlotRequest) ProfileID() uuid.UUID   { return r.profileID }
func (r *SlotRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *SlotRequest) TimeSlot() string       { return r.timeSlot }
func (r *SlotRequest) Message() string        { return r.message }
func (r *SlotRequest) Status() Status         { return r.status }
func (r *SlotRequest) CreatedAt() time.Time   { return r.createdAt }
func (r *SlotRequest) UpdatedAt() time.Time   { return r.updatedAt }
