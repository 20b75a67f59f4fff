package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/http/handlers"
	"github.com/spec-kit/post-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Posts          *handlers.PostsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Post reads are public; post mutations sit
// behind the authentication gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/healthcheck", cfg.Health.Check)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	posts := api.Group("/post")
	posts.Get("/getall/:page", cfg.Posts.List)
	posts.Get("/detail/:id", cfg.Posts.Get)

	protected := posts.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/", cfg.Posts.Create)
	protected.Patch("/:id", cfg.Posts.Update)
	protected.Delete("/:id", cfg.Posts.Delete)
}
