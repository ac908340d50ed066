package shared

import (
	"context"

	"eventlink/internal/domain/company"
	"eventlink/internal/domain/event"
	"eventlink/internal/domain/networking"
	"eventlink/internal/domain/profile"
	"eventlink/internal/domain/user"
	"eventlink/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Companies() CompanyRepository
	Events() EventRepository
	Profiles() ProfileRepository
	SlotRequests() SlotRequestRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CompanyByID(ctx context.Context, id uuid.UUID) (*CompanySnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	ActiveEventByCode(ctx context.Context, eventCode string) (*EventSnapshot, error)
	EventCodeExists(ctx context.Context, eventCode string) (bool, error)
	ProfileInEvent(ctx context.Context, eventID, profileID uuid.UUID) (*ProfileSnapshot, error)
	ProfileByEventAndAccessCode(ctx context.Context, eventID uuid.UUID, accessCode string) (*ProfileSnapshot, error)
	ProfileByEmailAndAccessCode(ctx context.Context, email, accessCode string) (*ProfileSnapshot, error)
	ProfileEmailTaken(ctx context.Context, eventID uuid.UUID, email string) (bool, error)
	AccessCodeExists(ctx context.Context, accessCode string) (bool, error)
	SlotRequestByID(ctx context.Context, id uuid.UUID) (*SlotRequestSnapshot, error)
	SlotRequestForTarget(ctx context.Context, id, targetProfileID uuid.UUID) (*SlotRequestSnapshot, error)
}

// Minimal snapshots for command-side validation (CQRS separation from
// the read-side view types).
type CompanySnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type EventSnapshot struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	EventCode string
	Name      string
	IsActive  bool
}

type ProfileSnapshot struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	FullName       string
	Position       string
	CompanyName    string
	Bio            string
	Interests      []string
	LinkedinURL    string
	Email          string
	Phone          string
	PhotoURL       *string
	AccessCode     string
	CodeVerified   bool
	AvailableSlots []string
}

type SlotRequestSnapshot struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	RequesterID uuid.UUID
	TimeSlot    string
	Status      string
}

type CompanyRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *company.Company) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *company.Company) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *event.Event) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, e *event.Event) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *profile.Profile) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *profile.Profile) error
	SetVerified(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type SlotRequestRepository interface {
	// Create inserts with ON CONFLICT DO NOTHING on the
	// (profile_id, time_slot) unique key and reports a duplicate-key
	// repository error when the row was not inserted.
	Create(ctx context.Context, tx db.DBTX, r *networking.SlotRequest) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status networking.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
