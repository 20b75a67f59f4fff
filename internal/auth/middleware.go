package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// Middleware validates bearer tokens on protected routes. Verification is
// purely cryptographic: no store access, no shared mutable state.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the authentication gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Every failure mode
// (missing header, malformed token, bad signature, expired) produces the same
// response so callers learn nothing about why a token was rejected.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("invalid or missing token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid or missing token")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid or missing token")
	}

	setIdentity(c, &Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Claims:    claims,
	})
	return c.Next()
}
