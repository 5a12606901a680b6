package models

import "time"

// Roles assignable to a [User]. The role is embedded in every issued token
// as a flat string claim and checked by the authorization gate.
const (
	// RoleUser is the default role for self-registered accounts (patients
	// and clinic staff without elevated rights).
	RoleUser = "User"

	// RoleDentist marks practitioner accounts that may manage appointments
	// and visit history for any patient.
	RoleDentist = "Dentist"

	// RoleAdmin grants full administrative access, including user account
	// management and deactivation.
	RoleAdmin = "Admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	// Login accepts either Username or Email.
	Email string `json:"email"`

	// CPF is the optional national identity number of the account holder.
	// When present it is unique across accounts and is carried as an
	// optional token claim.
	CPF string `json:"cpf,omitempty"`

	// Phone is an optional contact number. Non-unique.
	Phone string `json:"phone,omitempty"`

	// PasswordHash stores the Argon2id digest of the user's password,
	// hex-encoded. This value MUST be a derived value, never plaintext.
	// It is never serialized outward.
	PasswordHash string `json:"-"`

	// PasswordSalt stores the per-user random salt used to derive
	// PasswordHash, hex-encoded. Never serialized outward.
	PasswordSalt string `json:"-"`

	// Role is the authorization role of the account: one of [RoleUser],
	// [RoleDentist], [RoleAdmin].
	Role string `json:"role"`

	// Active reports whether the account may authenticate. A deactivated
	// account never authenticates successfully regardless of credentials.
	// Only an administrator mutates this flag.
	Active bool `json:"active"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is the timestamp of the most recent successful
	// authentication. Overwritten with last-write-wins semantics on
	// concurrent logins.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the externally safe projection of the user, with all
// credential material stripped. Handlers must serialize this type, never
// [User] itself, when returning account data to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CPF:       u.CPF,
		Phone:     u.Phone,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// PublicUser is the client-facing view of an account. It carries no
// credential material by construction.
type PublicUser struct {
	UserID    int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CPF       string     `json:"cpf,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ValidRole reports whether role is one of the roles known to the system.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleDentist, RoleAdmin:
		return true
	}
	return false
}
