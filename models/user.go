package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database at creation time.
	UserID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// PasswordHash stores the derived password value in the form
	// "salt.hexkey". This value MUST be a KDF output, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// FirstName is the given name of the user. Non-sensitive.
	FirstName string `json:"first_name"`

	// LastName is the family name of the user. Non-sensitive.
	LastName string `json:"last_name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the projection of a User that is safe to return to clients.
// It deliberately omits the password hash and any other credential data.
type PublicUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Public returns the client-visible projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
