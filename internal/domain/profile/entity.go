package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is one attendee's registration in one event. The same person
// attending two events has two independent profiles, each with its own
// access code. The access code is the only credential for public
// networking actions; possession is authorization.
type Profile struct {
	id             uuid.UUID
	eventID        uuid.UUID
	fullName       string
	position       string
	companyName    string
	bio            string
	interests      []string
	linkedinURL    string
	email          Email
	phone          string
	photoURL       *string
	accessCode     string
	codeVerified   bool
	availableSlots []string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProfile(
	eventID uuid.UUID,
	fullName, position, companyName, bio string,
	interests []string,
	linkedinURL string,
	email Email,
	phone string,
	photoURL *string,
	accessCode string,
) (*Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if accessCode == "" {
		return nil, ErrInvalidAccessCode
	}
	if interests == nil {
		interests = []string{}
	}

	return &Profile{
		id:             uuid.New(),
		eventID:        eventID,
		fullName:       fullName,
		position:       strings.TrimSpace(position),
		companyName:    strings.TrimSpace(companyName),
		bio:            strings.TrimSpace(bio),
		interests:      interests,
		linkedinURL:    strings.TrimSpace(linkedinURL),
		email:          email,
		phone:          strings.TrimSpace(phone),
		photoURL:       photoURL,
		accessCode:     accessCode,
		codeVerified:   false,
		availableSlots: []string{},
	}, nil
}

func ReconstructProfile(
	id, eventID uuid.UUID,
	fullName, position, companyName, bio string,
	interests []string,
	linkedinURL string,
	email Email,
	phone string,
	photoURL *string,
	accessCode string,
	codeVerified bool,
	availableSlots []string,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:             id,
		eventID:        eventID,
		fullName:       fullName,
		position:       position,
		companyName:    companyName,
		bio:            bio,
		interests:      interests,
		linkedinURL:    linkedinURL,
		email:          email,
		phone:          phone,
		photoURL:       photoURL,
		accessCode:     accessCode,
		codeVerified:   codeVerified,
		availableSlots: availableSlots,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// CarryOver builds a registration for another event from this profile,
// copying the descriptive fields but never the credential: the new
// profile gets its own access code and starts unverified.
func (p *Profile) CarryOver(eventID uuid.UUID, accessCode string) (*Profile, error) {
	return NewProfile(
		eventID,
		p.fullName, p.position, p.companyName, p.bio,
		append([]string{}, p.interests...),
		p.linkedinURL,
		p.email,
		p.phone,
		p.photoURL,
		accessCode,
	)
}

// Verify marks the credential as having been presented at the verify
// entry point. One-way and idempotent.
func (p *Profile) Verify() {
	p.codeVerified = true
}

// HasAvailableSlot reports whether the attendee declared label as a
// time other attendees may request. The declared list is the source of
// truth for booking eligibility, not the event's generated slots.
func (p *Profile) HasAvailableSlot(label string) bool {
	for _, s := range p.availableSlots {
		if s == label {
			return true
		}
	}
	return false
}

// SetAvailableSlots replaces the declared availability list. Labels
// must be well-formed; membership in the event's generated set is not
// enforced here.
func (p *Profile) SetAvailableSlots(labels []string) error {
	for _, l := range labels {
		if !ValidSlotLabel(l) {
			return ErrInvalidSlotLabel
		}
	}
	if labels == nil {
		labels = []string{}
	}
	p.availableSlots = labels
	return nil
}

func (p *Profile) ID() uuid.UUID            { return p.id }
func (p *Profile) EventID() uuid.UUID       { return p.eventID }
func (p *Profile) FullName() string         { return p.fullName }
func (p *Profile) Position() string         { return p.position }
func (p *Profile) CompanyName() string      { return p.companyName }
func (p *Profile) Bio() string              { return p.bio }
func (p *Profile) Interests() []string      { return p.interests }
func (p *Profile) LinkedinURL() string      { return p.linkedinURL }
func (p *Profile) Email() Email             { return p.email }
func (p *Profile) Phone() string            { return p.phone }
func (p *Profile) PhotoURL() *string        { return p.photoURL }
func (p *Profile) AccessCode() string       { return p.accessCode }
func (p *Profile) IsVerified() bool         { return p.codeVerified }
func (p *Profile) AvailableSlots() []string { return p.availableSlots }
func (p *Profile) CreatedAt() time.Time     { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time     { return p.updatedAt }
