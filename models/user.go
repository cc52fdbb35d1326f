package models

import "time"

// User represents a staff account used for authentication and authorization
// on the admin dashboard. Credential material must never leave the trusted
// boundary: PasswordHash is excluded from JSON serialization entirely.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// FullName is the display name shown in the admin dashboard.
	FullName string `json:"fullName"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role is a free-form role tag ("admin", "staff").
	Role string `json:"role"`

	// IsActive marks whether the account may log in. Deactivated accounts
	// keep their rows for auditing but are rejected at login time.
	IsActive bool `json:"isActive"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Permissions is the one-to-one capability row attached to every user.
// Flags are checked by the admin middleware; the zero value grants nothing.
type Permissions struct {
	UserID int64 `json:"-"`

	// CanManageUsers gates the admin user-management endpoints.
	CanManageUsers bool `json:"canManageUsers"`

	// CanViewSubmissions gates read access to submitted forms in the
	// dashboard UI (advisory; form reads themselves are unauthenticated).
	CanViewSubmissions bool `json:"canViewSubmissions"`

	// CanExportData gates bulk export features in the dashboard UI.
	CanExportData bool `json:"canExportData"`
}

// TableName returns the name of the database table
// associated with the Permissions model.
func (p Permissions) TableName() string {
	return "user_permissions"
}

// UserUpdate carries a partial update for a user account. Nil fields are
// left untouched; this is the only mutable surface in the system - form
// submissions are append-only.
type UserUpdate struct {
	FullName    *string      `json:"fullName,omitempty"`
	Role        *string      `json:"role,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
	Password    *string      `json:"password,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}
