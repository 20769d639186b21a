package handler

import (
	"github.com/gofiber/fiber/v2"

	"matchapi/internal/http/middleware"
	"matchapi/internal/service"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account with its default profile and returns a session.
func Register(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}
		sess, err := authSvc.Register(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sess)
	}
}

// Login verifies credentials and returns a session.
func Login(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}
		sess, err := authSvc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(sess)
	}
}

// Logout revokes the current session token.
func Logout(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, _ := c.Locals(middleware.TokenLocalKey).(string)
		if err := authSvc.Logout(c.UserContext(), raw); err != nil {
			return writeAppError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
