package handler

import (
	"github.com/gofiber/fiber/v2"

	"matchapi/internal/http/middleware"
	"matchapi/internal/service"
)

// GetMyProfile returns the authenticated user's profile (defaults if the
// user never edited it).
func GetMyProfile(profileSvc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := profileSvc.Get(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateMyProfile validates and persists a profile edit.
func UpdateMyProfile(profileSvc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.ProfileUpdate
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}
		p, err := profileSvc.Update(c.UserContext(), middleware.UserIDFromCtx(c), req)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(p)
	}
}

// UploadProfilePhoto accepts a multipart image (field name: photo) and
// points the profile at the stored object.
func UploadProfilePhoto(profileSvc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "photo is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "cannot open uploaded photo")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		p, err := profileSvc.UploadPhoto(c.UserContext(), middleware.UserIDFromCtx(c), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(p)
	}
}
