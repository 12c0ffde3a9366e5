package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/dto"
	mid "github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
	"github.com/Amitgupta170804/BlogEase/internal/utils"
)

// CreateComment godoc
// @Summary      Comment on a blog
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path     string              true  "Blog ID"
// @Param        body  body     dto.CommentRequest  true  "Comment"
// @Success      200   {array}  dto.CommentView
// @Failure      400   {object} dto.ErrorResponse
// @Failure      404   {object} dto.ErrorResponse
// @Router       /api/blogs/{id}/comment [post]
func CreateComment(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}
		id, err := paramOID(c, "id", services.ErrBlogNotFound)
		if err != nil {
			return err
		}

		var req dto.CommentRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}

		comments, err := svc.AddComment(c.UserContext(), id, uid, req)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(comments)
	}
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed for the comment author and the blog author.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id          path     string  true  "Blog ID"
// @Param        comment_id  path     string  true  "Comment ID"
// @Success      200  {array}  models.Comment
// @Failure      401  {object} dto.ErrorResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /api/blogs/{id}/comment/{comment_id} [delete]
func DeleteComment(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}
		id, err := paramOID(c, "id", services.ErrBlogNotFound)
		if err != nil {
			return err
		}
		// a malformed comment id matches no comment
		commentID := utils.OidOrNil(c.Params("comment_id"))

		comments, err := svc.DeleteComment(c.UserContext(), id, commentID, uid)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(comments)
	}
}
