// categories.go
//
// Catalog service for the nickstore game account storefront
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of nickstore.
// nickstore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// nickstore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with nickstore.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/models"
	"github.com/localnerve/nickstore/internal/services"
	"github.com/localnerve/nickstore/internal/utils"
)

// CategoryHandler handles category routes
type CategoryHandler struct {
	Categories *services.CategoryService
}

// CreateCategoryRequest is the body of POST /api/categories
type CreateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryNamesResponse lists category names for selection menus
type CategoryNamesResponse struct {
	Categories []string `json:"categories"`
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Description Add a category. Names are unique.
// @Tags Categories
// @Accept json
// @Produce json
// @Param body body CreateCategoryRequest true "Category"
// @Success 200 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var body CreateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errInvalidBody.Error())
	}
	if err := requireFields(field{"name", body.Name != nil}); err != nil {
		return validationError(c, err.Error())
	}

	category, err := h.Categories.Create(c.UserContext(), *body.Name)
	if err != nil {
		return serviceError(c, err, "Category", "createCategory")
	}

	return utils.SuccessResponse(c, category, fiber.StatusOK)
}

// GetCategories handles GET /api/categories
// @Summary List categories
// @Description Get every category in creation order
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Categories.ListAll(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Category", "getCategories")
	}

	if categories == nil {
		categories = []models.Category{}
	}
	return utils.SuccessResponse(c, categories, fiber.StatusOK)
}

// GetCategoryNames handles GET /api/categories/names
// @Summary List category names
// @Description Get just the category names, for dropdowns
// @Tags Categories
// @Produce json
// @Success 200 {object} CategoryNamesResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/names [get]
func (h *CategoryHandler) GetCategoryNames(c *fiber.Ctx) error {
	names, err := h.Categories.ListNames(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Category", "getCategoryNames")
	}

	return utils.SuccessResponse(c, CategoryNamesResponse{Categories: names}, fiber.StatusOK)
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Description Delete a category that no listing uses
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return validationError(c, err.Error())
	}

	if err := h.Categories.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Category", "deleteCategory")
	}

	return utils.MutationSuccessResponse(c, "Category deleted")
}
