package controllers

import (
	"github.com/gofiber/fiber/v2"

	mid "github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

// LikeUnlikeHandler godoc
// @Summary      Toggle the caller's like on a blog
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path    string  true  "Blog ID"
// @Success      200  {array}  string  "user ids that like the blog, newest first"
// @Failure      401  {object} dto.ErrorResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /api/blogs/{id}/like [put]
func LikeUnlikeHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}
		id, err := paramOID(c, "id", services.ErrBlogNotFound)
		if err != nil {
			return err
		}

		likes, err := svc.ToggleLike(c.UserContext(), id, uid)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(likes)
	}
}
