package domain

import "time"

// Role is the permission tier attached to a user account.
type Role string

const (
	RoleManager      Role = "Manager"
	RoleReceptionist Role = "Receptionist"
	RoleHousekeeping Role = "Housekeeping"
	RoleAccountant   Role = "Accountant"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RoleManager, RoleReceptionist, RoleHousekeeping, RoleAccountant}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleReceptionist, RoleHousekeeping, RoleAccountant:
		return true
	}
	return false
}

// UserStatus is the account lifecycle state. Accounts are never physically
// deleted through the API; they are locked instead so the audit trail
// (created_by / updated_by references) stays intact.
type UserStatus string

const (
	UserActive UserStatus = "Active"
	UserLocked UserStatus = "Locked"
)

// User models a staff account.
type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         Role       `json:"role" db:"role"`
	Status       UserStatus `json:"status" db:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	CreatedBy    *int64     `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	UpdatedBy    *int64     `json:"updated_by,omitempty" db:"updated_by"`
}
