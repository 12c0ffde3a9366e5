package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/dto"
	mid "github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

// GetProfile godoc
// @Summary      Public profile of a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func GetProfile(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramOID(c, "id", services.ErrUserNotFound)
		if err != nil {
			return err
		}

		user, err := svc.Profile(c.UserContext(), id)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(user)
	}
}

// GetUserBlogs godoc
// @Summary      Blogs written by a user
// @Tags         users
// @Produce      json
// @Param        id   path     string  true  "User ID"
// @Success      200  {array}  dto.BlogView
// @Router       /api/users/{id}/blogs [get]
func GetUserBlogs(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramOID(c, "id", services.ErrUserNotFound)
		if err != nil {
			return err
		}

		blogs, err := svc.Blogs(c.UserContext(), id)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(blogs)
	}
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse  "Username is already taken"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/profile [put]
func UpdateProfile(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}

		var req dto.UpdateProfileRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}

		user, err := svc.UpdateProfile(c.UserContext(), uid, req)
		if errors.Is(err, services.ErrUsernameTaken) {
			return fiber.NewError(fiber.StatusBadRequest, "Username is already taken")
		}
		if err != nil {
			return httpError(err)
		}
		return c.JSON(user)
	}
}
