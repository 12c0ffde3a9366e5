package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

const msgServerError = "Server error"

// httpError turns a service error into the status/message the API promises.
// Unknown errors pass through untouched and end up as 500 in ErrorHandler.
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Blog not found")
	case errors.Is(err, services.ErrCommentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Comment does not exist")
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrImageNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	case errors.Is(err, services.ErrNotAuthorized):
		return fiber.NewError(fiber.StatusUnauthorized, "User not authorized")
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrUsernameTaken):
		return fiber.NewError(fiber.StatusBadRequest, "Username is taken")
	case errors.Is(err, services.ErrUnsupportedImage):
		return fiber.NewError(fiber.StatusBadRequest, "Only image uploads are allowed")
	}
	return err
}

// ErrorHandler renders every error as {"error": "..."}. Anything that is not
// a *fiber.Error is logged and hidden behind a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgServerError})
}
