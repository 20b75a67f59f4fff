package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMintParse_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", 24*time.Hour)
	now := time.Now()

	token, expiresAt, err := tm.Mint("user-123", "alice@example.com", now)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)
	require.Equal(t, now.Add(24*time.Hour).Unix(), expiresAt.Unix())

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	require.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestMint_Deterministic(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)
	now := time.Unix(1_700_000_000, 0)

	first, _, err := tm.Mint("u1", "a@example.com", now)
	require.NoError(t, err)
	second, _, err := tm.Mint("u1", "a@example.com", now)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParse_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	window := 24 * time.Hour
	tm := NewTokenManager("secret", window)

	// Issued so the window ends one second from now: still valid.
	fresh, _, err := tm.Mint("u1", "a@example.com", time.Now().Add(-window+time.Second))
	require.NoError(t, err)
	_, err = tm.Parse(fresh)
	require.NoError(t, err)

	// Issued so the window ended one second ago: expired.
	stale, _, err := tm.Mint("u1", "a@example.com", time.Now().Add(-window-time.Second))
	require.NoError(t, err)
	_, err = tm.Parse(stale)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", time.Hour).Mint("u1", "a@example.com", time.Now())
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := tm.Parse(tok)
		require.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestParse_TamperedSegments(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Mint("u1", "a@example.com", time.Now())
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	// Flip one byte of the decoded payload and signature in turn; every
	// mutation must be rejected, never verified.
	for _, idx := range []int{1, 2} {
		raw, err := base64.RawURLEncoding.DecodeString(segments[idx])
		require.NoError(t, err)

		for pos := 0; pos < len(raw); pos++ {
			mutated := append([]byte(nil), raw...)
			mutated[pos] ^= 0x01

			parts := append([]string(nil), segments...)
			parts[idx] = base64.RawURLEncoding.EncodeToString(mutated)

			_, err := tm.Parse(strings.Join(parts, "."))
			require.Error(t, err, "segment %d byte %d", idx, pos)
		}
	}
}

func TestParse_AlgorithmNoneRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"u1"}`))

	_, err := tm.Parse(header + "." + payload + ".")
	require.Error(t, err)
}
