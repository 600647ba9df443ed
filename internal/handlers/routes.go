package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/config"
	"github.com/localnerve/nickstore/internal/middleware"
	"github.com/localnerve/nickstore/internal/services"
	"github.com/localnerve/nickstore/internal/store"
	"github.com/localnerve/nickstore/internal/types"
	"github.com/localnerve/nickstore/internal/utils"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the info, auth, category and listing routes on app
func RegisterRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	s := store.New(db)

	listings := services.NewListingService(s)
	if cfg.DefaultFacebookLink != "" {
		listings.DefaultFacebookLink = cfg.DefaultFacebookLink
	}

	info := &InfoHandler{Config: cfg, DB: db}
	auth := &AuthHandler{Accounts: services.NewAccountService(s)}
	categories := &CategoryHandler{Categories: services.NewCategoryService(s)}
	nicks := &ListingHandler{Listings: listings}

	app.Get("/", info.Root)
	app.Get("/health", info.Health)
	app.Get("/health/ready", info.Ready)

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	api.Post("/auth/login", auth.Login)
	api.Post("/auth/register", auth.Register)

	api.Post("/categories", categories.CreateCategory)
	api.Get("/categories", categories.GetCategories)
	api.Get("/categories/names", categories.GetCategoryNames)
	api.Delete("/categories/:id", categories.DeleteCategory)

	api.Post("/game-nicks", nicks.CreateListing)
	api.Get("/game-nicks", nicks.GetListings)
	api.Get("/game-nicks/category/:name", nicks.GetListingsByCategory)
	api.Get("/game-nicks/:id", nicks.GetListing)
	api.Delete("/game-nicks/:id", nicks.DeleteListing)
}

// NotFound answers any request no route matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

// ErrorHandler handles errors that escape a handler
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fiberErr *fiber.Error
	var customErr *types.CustomError
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
