package domain

import "time"

// Role is the closed set of global roles a user can hold. Keeping it a named
// type stops arbitrary strings from ever reaching storage.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account on the launcher platform. Accounts are never
// physically deleted; deactivation (IsActive=false) is the terminal state.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"globalRole"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`

	// AssignedAppIDs holds ids of apps linked to this user. Populated only by
	// repository queries that load assignments.
	AssignedAppIDs []uint `json:"-"`
}
