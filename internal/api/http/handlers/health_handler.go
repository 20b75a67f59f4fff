package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/post-service/internal/persistence"
)

// HealthHandler reports service and dependency health. Dependency failures
// are reported as "unavailable" only; the underlying error stays in the logs.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
	rabbit      *persistence.Rabbit
	logger      *zap.Logger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis, rabbit *persistence.Rabbit, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		postgres:    postgres,
		redis:       redis,
		rabbit:      rabbit,
		logger:      logger,
	}
}

// Check handles GET /api/healthcheck by pinging each dependency.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	healthy := true

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"postgres", h.postgres.Ping},
		{"redis", h.redis.Ping},
		{"rabbitmq", h.rabbit.Ping},
	}
	for _, check := range checks {
		if err := check.ping(ctx); err != nil {
			h.logger.Warn("dependency unavailable", zap.String("dependency", check.name), zap.Error(err))
			depStatus[check.name] = "unavailable"
			healthy = false
		} else {
			depStatus[check.name] = "ok"
		}
	}

	body := fiber.Map{
		"status":       "success",
		"service":      h.serviceName,
		"version":      h.version,
		"dependencies": depStatus,
	}
	if !healthy {
		body["status"] = "error"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}
