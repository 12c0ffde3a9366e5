package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/controllers"
	"github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

func SetupRoutesImage(api fiber.Router, svc *services.ImageService, signer *auth.Signer) {
	image := api.Group("/images")

	image.Post("/", append(middleware.Protected(signer), controllers.UploadImage(svc))...)
	image.Get("/:id", controllers.GetImage(svc))
}
