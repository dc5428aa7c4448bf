package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives one-way password hashes for storage and verifies
// candidate passwords against a stored hash. It knows nothing about users,
// tokens, or persistence; its only job is the key-derivation step of the
// authentication flow.
type PasswordHasher interface {
	// Hash derives a salted one-way hash of password in the storage format
	// "salt.hexkey", where salt is a random hex string and hexkey is the
	// hex-encoded KDF output. Two calls with the same password produce
	// different results because a fresh salt is drawn every time.
	Hash(password string) (string, error)

	// Verify re-derives the key from password and the salt embedded in
	// stored and compares the results in constant time.
	// Returns ErrHashMismatch when the password does not match and
	// ErrMalformedHash when stored does not contain the "salt.hexkey"
	// separator.
	Verify(password, stored string) error
}
