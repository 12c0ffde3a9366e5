package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

// UploadImage godoc
// @Summary      Upload an image
// @Description  Multipart field "image". The returned url can be put in a blog's images or a profile picture.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "image file"
// @Success      200    {object}  dto.ImageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/images [post]
func UploadImage(svc *services.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "image is required")
		}

		f, err := fh.Open()
		if err != nil {
			return err
		}
		defer f.Close()

		id, err := svc.Upload(c.UserContext(), fh.Filename, fh.Header.Get(fiber.HeaderContentType), f)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(dto.ImageResponse{ID: id, URL: "/api/images/" + id.Hex()})
	}
}

// GetImage godoc
// @Summary  Download an image
// @Tags     images
// @Param    id   path  string  true  "Image ID"
// @Success  200
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/images/{id} [get]
func GetImage(svc *services.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramOID(c, "id", services.ErrImageNotFound)
		if err != nil {
			return err
		}

		rc, contentType, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return httpError(err)
		}

		c.Set(fiber.HeaderContentType, contentType)
		// fasthttp closes rc once the body is written
		return c.SendStream(rc)
	}
}
