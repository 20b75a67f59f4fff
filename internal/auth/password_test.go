package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestHashVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password1234567890", testParams())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	require.NoError(t, VerifyPassword(hash, "password1234567890"))
}

func TestHashVerify_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password", testParams())
	require.NoError(t, err)

	err = VerifyPassword(hash, "wrong-password")
	require.ErrorIs(t, err, ErrHashMismatch)
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password", testParams())
	require.NoError(t, err)
	second, err := HashPassword("same-password", testParams())
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerify_InvalidEncoding(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$not-base64!$aGFzaA",
	} {
		err := VerifyPassword(encoded, "whatever")
		require.ErrorIs(t, err, ErrInvalidHash, "encoded %q", encoded)
	}
}

func TestVerify_EmptySaltOrKeyRejected(t *testing.T) {
	t.Parallel()

	// A well-formed PHC string with a zero-length key must not verify: a
	// zero-length derived candidate would compare equal for any password.
	emptyKey := "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$"
	require.ErrorIs(t, VerifyPassword(emptyKey, "any-password-at-all"), ErrInvalidHash)
	require.ErrorIs(t, VerifyPassword(emptyKey, ""), ErrInvalidHash)

	emptySalt := "$argon2id$v=19$m=8192,t=1,p=1$$aGFzaGhhc2hoYXNoaGFzaA"
	require.ErrorIs(t, VerifyPassword(emptySalt, "any-password-at-all"), ErrInvalidHash)
}
