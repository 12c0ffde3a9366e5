package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

// Register godoc
// @Summary      Register a new user
// @Description  Creates the account and returns a token valid for one hour
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Register Request"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse  "missing field, email or username taken"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func Register(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.RegisterRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}

		token, err := svc.Register(c.UserContext(), req)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(dto.TokenResponse{Token: token})
	}
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Login Request"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse  "Invalid credentials"
// @Router       /api/auth/login [post]
func Login(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}

		token, err := svc.Login(c.UserContext(), req)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(dto.TokenResponse{Token: token})
	}
}
