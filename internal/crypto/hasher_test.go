package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Format(t *testing.T) {
	h := NewScryptHasher()

	stored, err := h.Hash("secret-password")
	require.NoError(t, err)

	parts := strings.SplitN(stored, ".", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], scryptSaltLen*2, "salt must be hex-encoded")
	assert.Len(t, parts[1], scryptKeyLen*2, "key must be hex-encoded")
}

func TestHashVerify_RoundTrip(t *testing.T) {
	h := NewScryptHasher()

	passwords := []string{"pw", "correct horse battery staple", "", "пароль", "p@$$w0rd!"}
	for _, password := range passwords {
		stored, err := h.Hash(password)
		require.NoError(t, err)
		assert.NoError(t, h.Verify(password, stored), "password %q must verify against its own hash", password)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewScryptHasher()

	stored, err := h.Hash("right")
	require.NoError(t, err)

	err = h.Verify("wrong", stored)
	assert.ErrorIs(t, err, ErrHashMismatch)
}

func TestHash_FreshSaltEveryCall(t *testing.T) {
	h := NewScryptHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")

	// both still verify
	assert.NoError(t, h.Verify("same-password", first))
	assert.NoError(t, h.Verify("same-password", second))
}

func TestVerify_MalformedStored(t *testing.T) {
	h := NewScryptHasher()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "no separator", stored: "deadbeefdeadbeef"},
		{name: "empty string", stored: ""},
		{name: "empty salt", stored: ".deadbeef"},
		{name: "empty key", stored: "deadbeef."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify("whatever", tt.stored)
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}

func TestVerify_HashFromAnotherHasherInstance(t *testing.T) {
	stored, err := NewScryptHasher().Hash("portable")
	require.NoError(t, err)

	// the hasher is stateless: any instance can verify any stored value
	assert.NoError(t, NewScryptHasher().Verify("portable", stored))
}
