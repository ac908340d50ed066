package commands

import (
	"context"

	"github.com/google/uuid"
)

// AccessCodeNotifier delivers the access code to a freshly registered
// attendee. Implementations must be safe to fail: callers log and move
// on, registration never depends on delivery.
type AccessCodeNotifier interface {
	SendAccessCode(ctx context.Context, email, fullName, eventName, eventCode, accessCode string) error
}

type RegistrationResult struct {
	ProfileID   uuid.UUID
	AccessCode  string
	CarriedOver bool
}
