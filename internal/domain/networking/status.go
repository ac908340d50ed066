package networking

// Status is the negotiation state of a slot request.
//
//	pending -> accepted | rejected   (target decides)
//	pending -> cancelled             (either party)
//	accepted -> cancelled            (either party)
//
// rejected and cancelled are absorbing. Deciding an already-decided
// request overwrites the status: there is deliberately no guard
// against re-deciding a resolved request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// NewDecision parses a target's decision. Only accepted and rejected
// are legal decision values; everything else is a validation error.
func NewDecision(s string) (Status, error) {
	status := Status(s)
	if status != StatusAccepted && status != StatusRejected {
		return "", ErrInvalidDecision
	}
	return status, nil
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
