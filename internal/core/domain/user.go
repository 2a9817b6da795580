package domain

import (
	"strings"
	"time"
)

// Role classifies what kind of actor a directory entry represents. Roles are
// descriptive data on the record; they do not gate any API operation.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
	RoleAdmin   Role = "admin"
)

// Roles lists every valid role value.
var Roles = []Role{RoleUser, RoleManager, RoleViewer, RoleAdmin}

// ValidRole reports whether r is one of the known role values.
func ValidRole(r Role) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is a single directory record.
//
// Email is stored normalized to lower case and is unique across the store
// under case-insensitive comparison. Password is kept in plain text (this is
// a demo directory, hardening is explicitly out of scope) and is never
// serialized: responses use the handler layer's sanitized view, and the
// json tag here is a second line of defense.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeEmail lowercases an address for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
