package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/services"
	"github.com/localnerve/nickstore/internal/types"
	"github.com/localnerve/nickstore/internal/utils"
)

// ListingHandler handles game nick listing routes
type ListingHandler struct {
	Listings *services.ListingService
}

// CreateListingRequest is the body of POST /api/game-nicks.
// price may be a number or a numeric string; images may be one URL or a list.
type CreateListingRequest struct {
	Title        *string                `json:"title"`
	Category     *string                `json:"category"`
	Price        *types.FlexFloat64     `json:"price" swaggertype:"number"`
	Details      *string                `json:"details"`
	FacebookLink *string                `json:"facebook_link"`
	Images       types.FlexList[string] `json:"images" swaggertype:"array,string"`
}

// CreateListing handles POST /api/game-nicks
// @Summary Create a listing
// @Description Add a game account for sale. The category is not checked against existing categories.
// @Tags Game Nicks
// @Accept json
// @Produce json
// @Param body body CreateListingRequest true "Listing"
// @Success 200 {object} models.Listing
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /game-nicks [post]
func (h *ListingHandler) CreateListing(c *fiber.Ctx) error {
	var body CreateListingRequest
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errInvalidBody.Error())
	}
	if err := requireFields(
		field{"title", body.Title != nil},
		field{"category", body.Category != nil},
		field{"price", body.Price != nil},
		field{"details", body.Details != nil},
	); err != nil {
		return validationError(c, err.Error())
	}

	input := services.ListingInput{
		Title:    *body.Title,
		Category: *body.Category,
		Price:    body.Price.Float64(),
		Details:  *body.Details,
		Images:   body.Images.Slice(),
	}
	if body.FacebookLink != nil {
		input.FacebookLink = *body.FacebookLink
	}

	listing, err := h.Listings.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, "Listing", "createListing")
	}

	return utils.SuccessResponse(c, listing, fiber.StatusOK)
}

// GetListings handles GET /api/game-nicks
// @Summary List listings
// @Description Get every listing, newest first
// @Tags Game Nicks
// @Produce json
// @Success 200 {array} models.Listing
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /game-nicks [get]
func (h *ListingHandler) GetListings(c *fiber.Ctx) error {
	listings, err := h.Listings.ListAll(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Listing", "getListings")
	}

	return utils.SuccessResponse(c, listings, fiber.StatusOK)
}

// GetListing handles GET /api/game-nicks/:id
// @Summary Get a listing
// @Tags Game Nicks
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.Listing
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /game-nicks/{id} [get]
func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return validationError(c, err.Error())
	}

	listing, err := h.Listings.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Listing", "getListing")
	}

	return utils.SuccessResponse(c, listing, fiber.StatusOK)
}

// DeleteListing handles DELETE /api/game-nicks/:id
// @Summary Delete a listing
// @Tags Game Nicks
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /game-nicks/{id} [delete]
func (h *ListingHandler) DeleteListing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return validationError(c, err.Error())
	}

	if err := h.Listings.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Listing", "deleteListing")
	}

	return utils.MutationSuccessResponse(c, "Listing deleted")
}

// GetListingsByCategory handles GET /api/game-nicks/category/:name
// @Summary List listings in a category
// @Description Get the listings whose category equals name, newest first. No match returns an empty list.
// @Tags Game Nicks
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {array} models.Listing
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /game-nicks/category/{name} [get]
func (h *ListingHandler) GetListingsByCategory(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return validationError(c, "Invalid category name")
	}

	listings, err := h.Listings.ListByCategory(c.UserContext(), name)
	if err != nil {
		return serviceError(c, err, "Listing", "getListingsByCategory")
	}

	return utils.SuccessResponse(c, listings, fiber.StatusOK)
}
