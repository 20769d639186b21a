package handler

import (
	"github.com/gofiber/fiber/v2"

	"matchapi/internal/http/middleware"
	"matchapi/internal/service"
)

// UploadVerification accepts a multipart document (field name: file) plus
// a category form value and stores it for the authenticated user.
func UploadVerification(verificationSvc service.VerificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		}
		category := c.FormValue("category")

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := verificationSvc.Upload(c.UserContext(), middleware.UserIDFromCtx(c), category, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListVerifications returns the authenticated user's uploaded documents,
// newest first.
func ListVerifications(verificationSvc service.VerificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := verificationSvc.List(c.UserContext(), middleware.UserIDFromCtx(c))
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(fiber.Map{"documents": docs})
	}
}
