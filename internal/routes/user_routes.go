package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/controllers"
	"github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

func SetupRoutesUser(api fiber.Router, svc *services.UserService, signer *auth.Signer) {
	user := api.Group("/users")

	// before /:id so "profile" is not taken as an id
	user.Put("/profile", append(middleware.Protected(signer), controllers.UpdateProfile(svc))...)

	user.Get("/:id", controllers.GetProfile(svc))
	user.Get("/:id/blogs", controllers.GetUserBlogs(svc))
}
