package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/types"
)

// CurrentVersion is the catalog API version this build serves
const CurrentVersion = "1.0.0"

// VersionMiddleware reads the optional X-Api-Version header, rejects major
// versions this build does not serve, and echoes the served version back.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := strings.TrimSpace(c.Get("X-Api-Version"))

		// Accept "1", "1.0" and "1.0.0" style aliases
		if requested != "" {
			major, _, _ := strings.Cut(strings.TrimPrefix(requested, "v"), ".")
			if major != "1" {
				return types.NewCustomError(fiber.StatusBadRequest, "version",
					"Unsupported API version %q", requested)
			}
		}

		c.Locals("apiVersion", CurrentVersion)
		c.Set("X-Api-Version", CurrentVersion)

		return c.Next()
	}
}
