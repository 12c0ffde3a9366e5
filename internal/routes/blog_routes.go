package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/controllers"
	"github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

func SetupRoutesBlog(api fiber.Router, svc *services.BlogService, signer *auth.Signer) {
	blog := api.Group("/blogs")
	protected := middleware.Protected(signer)

	blog.Get("/", controllers.ListBlogs(svc))
	blog.Get("/:id", controllers.GetBlog(svc))

	blog.Post("/", append(protected, controllers.CreateBlog(svc))...)
	blog.Put("/:id", append(protected, controllers.UpdateBlog(svc))...)
	blog.Delete("/:id", append(protected, controllers.DeleteBlog(svc))...)

	blog.Put("/:id/like", append(protected, controllers.LikeUnlikeHandler(svc))...)
	blog.Post("/:id/comment", append(protected, controllers.CreateComment(svc))...)
	blog.Delete("/:id/comment/:comment_id", append(protected, controllers.DeleteComment(svc))...)
}
