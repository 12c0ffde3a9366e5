package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/internal/controllers"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

func SetupAuth(api fiber.Router, svc *services.AuthService) {
	auth := api.Group("/auth")

	auth.Post("/register", controllers.Register(svc))
	// curl -X POST http://127.0.0.1:5000/api/auth/register \
	// -H "Content-Type: application/json" \
	// -d '{"username": "alice", "email": "alice@example.com", "password": "secret"}'

	auth.Post("/login", controllers.Login(svc))
}
