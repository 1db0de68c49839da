package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// ValidRole reports whether r is one of the two known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleClient
}

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Company      string    `json:"company,omitempty"`
	Position     string    `json:"position,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated identity attached to a request by the auth
// middleware. It carries exactly what the access predicates need.
type Actor struct {
	ID   string
	Name string
	Role string
}

// IsAdmin gates admin-only mutations.
func IsAdmin(a Actor) bool {
	return a.Role == RoleAdmin
}

// CanAccessProject is the single authorization predicate for every
// project-scoped resource: admins see everything, clients only their own.
func CanAccessProject(a Actor, clientID string) bool {
	return a.Role == RoleAdmin || a.ID == clientID
}
