package auth

import "github.com/gofiber/fiber/v2"

const identityKey = "auth_identity"

// Identity is the request-scoped record of the verified caller. It is created
// by the middleware on successful verification, lives only for the duration
// of the request, and is the sole channel by which handlers learn who is
// calling; identity fields in request bodies are never trusted.
type Identity struct {
	SubjectID string
	Email     string
	Claims    *Claims
}

// IdentityFromContext retrieves the verified caller for the current request.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}

func setIdentity(c *fiber.Ctx, identity *Identity) {
	c.Locals(identityKey, identity)
}
