// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"cloud.google.com/go/civil"
)

// UserAccount is the identity record of the registry.
// Accounts are never physically removed; deletion moves them to StateBlocked.
type UserAccount struct {
	ID          int64      // Assigned by the store on insert.
	Login       string     // Unique across all accounts regardless of state. Case-sensitive.
	Credential  string     // Encoded salt and derived key. Never the plaintext password.
	CreatedDate civil.Date // Calendar date of creation, no time component.
	Group       *UserGroup // Resolved group reference.
	State       *UserState // Resolved state reference.
}

// IsActive reports whether the account is visible to outward-facing queries.
func (u *UserAccount) IsActive() bool {
	return u != nil && u.State != nil && u.State.Code == StateActive
}

// IsAdmin reports whether the account belongs to the administrator group.
func (u *UserAccount) IsAdmin() bool {
	return u != nil && u.Group != nil && u.Group.Code == GroupAdmin
}
