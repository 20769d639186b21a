package handler

import (
	"github.com/gofiber/fiber/v2"

	"matchapi/internal/service"
)

// SearchProfiles fetches the current member directory and filters it by
// the q query parameter. An empty q returns the full directory.
func SearchProfiles(directorySvc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profiles, err := directorySvc.FetchProfiles(c.UserContext())
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(fiber.Map{
			"profiles": directorySvc.Search(c.Query("q"), profiles),
		})
	}
}
