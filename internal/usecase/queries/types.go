package queries

// Role strings as they appear in JWT claims and the users table.
const (
	RoleViewer    = "viewer"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)
