package domain

import "time"

// Audit action tags. Free-form strings on the wire, but every write in this
// codebase goes through one of these constants.
const (
	AuditLoginSuccess    = "login_success"
	AuditLoginFailed     = "login_failed"
	AuditPasswordChanged = "password_changed"
	AuditUserCreated     = "user_created"
	AuditUserUpdated     = "user_updated"
	AuditUserPasswordSet = "user_password_set"
	AuditAppCreated      = "app_created"
	AuditAppUpdated      = "app_updated"
	AuditAppDeactivated  = "app_deactivated"
	AuditSeedCompleted   = "seed_completed"
)

// AuditEntry is one append-only audit record. UserID is nil for
// system-attributed events. Entries are immutable once written.
type AuditEntry struct {
	ID        uint           `json:"id"`
	UserID    *uint          `json:"userId"`
	Username  string         `json:"username,omitempty"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}
