package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/dto"
	mid "github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

// CreateBlog godoc
// @Summary      Create a blog post
// @Description  The signed-in user becomes the author. The response carries the author as an id.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBlogRequest  true  "Blog"
// @Success      200   {object}  models.Blog
// @Failure      400   {object}  dto.ErrorResponse  "title or content missing"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/blogs [post]
func CreateBlog(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}

		var req dto.CreateBlogRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}

		blog, err := svc.Create(c.UserContext(), uid, req)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(blog)
	}
}

// ListBlogs godoc
// @Summary      List blog posts, newest first
// @Tags         blogs
// @Produce      json
// @Param        search    query  string  false  "substring of title, content or a tag"
// @Param        category  query  string  false  "exact category"
// @Param        tag       query  string  false  "exact tag"
// @Param        author    query  string  false  "author username"
// @Success      200  {array}  dto.BlogView
// @Router       /api/blogs [get]
func ListBlogs(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.BlogQuery
		if err := c.QueryParser(&q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
		}

		blogs, err := svc.List(c.UserContext(), q)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(blogs)
	}
}

// GetBlog godoc
// @Summary      Get one blog post
// @Description  Counts as a view.
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  dto.BlogView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blogs/{id} [get]
func GetBlog(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramOID(c, "id", services.ErrBlogNotFound)
		if err != nil {
			return err
		}

		blog, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(blog)
	}
}

// UpdateBlog godoc
// @Summary      Update a blog post (author only)
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Blog ID"
// @Param        body  body      dto.UpdateBlogRequest  true  "Fields to change"
// @Success      200   {object}  models.Blog
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blogs/{id} [put]
func UpdateBlog(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}
		id, err := paramOID(c, "id", services.ErrBlogNotFound)
		if err != nil {
			return err
		}

		var req dto.UpdateBlogRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}

		blog, err := svc.Update(c.UserContext(), id, uid, req)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(blog)
	}
}

// DeleteBlog godoc
// @Summary      Delete a blog post (author only)
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blogs/{id} [delete]
func DeleteBlog(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDObjectID(c)
		if err != nil {
			return err
		}
		id, err := paramOID(c, "id", services.ErrBlogNotFound)
		if err != nil {
			return err
		}

		if err := svc.Delete(c.UserContext(), id, uid); err != nil {
			return httpError(err)
		}
		return c.JSON(dto.MessageResponse{Msg: "Blog removed"})
	}
}
