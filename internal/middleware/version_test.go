package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVersionApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var customErr *types.CustomError
			if errors.As(err, &customErr) {
				return c.Status(customErr.Code).SendString(customErr.Type)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Use(VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})
	return app
}

func TestVersionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", fiber.StatusOK},
		{"full version", "1.0.0", fiber.StatusOK},
		{"short alias", "1.0", fiber.StatusOK},
		{"major only", "v1", fiber.StatusOK},
		{"unsupported major", "2.0.0", fiber.StatusBadRequest},
	}

	app := newVersionApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Version", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == fiber.StatusOK {
				assert.Equal(t, CurrentVersion, resp.Header.Get("X-Api-Version"))
			}
		})
	}
}
