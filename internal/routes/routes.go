package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

// Deps is everything the route table needs.
type Deps struct {
	Auth   *services.AuthService
	Blogs  *services.BlogService
	Users  *services.UserService
	Images *services.ImageService
	Signer *auth.Signer
}

// Register mounts the API under /api plus the health check.
func Register(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")
	SetupAuth(api, d.Auth)
	SetupRoutesBlog(api, d.Blogs, d.Signer)
	SetupRoutesUser(api, d.Users, d.Signer)
	SetupRoutesImage(api, d.Images, d.Signer)
}
