package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// newGateApp builds a fiber app with a single protected route that records
// whether it ran and with which identity.
func newGateApp(tm *TokenManager) (*fiber.App, *Identity, *bool) {
	var seen Identity
	reached := false

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) (err error) {
		defer func() {
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"status": domainErr.StatusWord(), "message": domainErr.Message})
				err = nil
			}
		}()
		return c.Next()
	})

	mw := NewMiddleware(tm)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		reached = true
		if identity, ok := IdentityFromContext(c); ok {
			seen = *identity
		}
		return c.SendStatus(http.StatusOK)
	})
	return app, &seen, &reached
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGate_MissingToken(t *testing.T) {
	t.Parallel()

	app, _, reached := newGateApp(NewTokenManager("secret", time.Hour))
	status, _ := doRequest(t, app, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.False(t, *reached)
}

func TestGate_ValidToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	app, seen, reached := newGateApp(tm)

	token, _, err := tm.Mint("user-42", "bob@example.com", time.Now())
	require.NoError(t, err)

	status, _ := doRequest(t, app, "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
	require.True(t, *reached)
	require.Equal(t, "user-42", seen.SubjectID)
	require.Equal(t, "bob@example.com", seen.Email)
}

func TestGate_FailureResponsesIdentical(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	expired, _, err := tm.Mint("u1", "a@example.com", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	forged, _, err := NewTokenManager("other-secret", time.Hour).Mint("u1", "a@example.com", time.Now())
	require.NoError(t, err)

	headers := []string{
		"",
		"Bearer",
		"Basic abc",
		"Bearer not-a-jwt",
		"Bearer " + expired,
		"Bearer " + forged,
	}

	var bodies []string
	for _, header := range headers {
		app, _, reached := newGateApp(tm)
		status, body := doRequest(t, app, header)
		require.Equal(t, http.StatusUnauthorized, status, "header %q", header)
		require.False(t, *reached, "header %q", header)
		bodies = append(bodies, body)
	}

	// Expired, forged, malformed and absent tokens must be indistinguishable.
	for i := 1; i < len(bodies); i++ {
		require.Equal(t, bodies[0], bodies[i])
	}
}
