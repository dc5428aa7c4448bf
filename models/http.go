package models

// RegisterRequest is the body of a signup request.
// All fields are required; empty values are rejected before the password
// is ever hashed.
type RegisterRequest struct {
	// Username is the desired unique login for the new account.
	Username string `json:"username"`

	// Password is the plaintext password supplied by the client.
	// It is hashed immediately and never persisted or logged.
	Password string `json:"password"`

	// FirstName is the given name of the user.
	FirstName string `json:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"lastName"`
}

// Credentials is the body of a signin request.
type Credentials struct {
	// Username identifies the account to authenticate.
	Username string `json:"username"`

	// Password is the plaintext candidate password.
	Password string `json:"password"`
}

// TokenResponse is the body returned from a successful signin.
type TokenResponse struct {
	// AccessToken is the signed session token the client must present
	// in the Authorization header on protected routes.
	AccessToken string `json:"accessToken"`
}
