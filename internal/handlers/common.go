// common.go
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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/services"
	"github.com/localnerve/nickstore/internal/utils"
)

var (
	errInvalidID   = errors.New("Invalid id: must be a positive integer")
	errInvalidBody = errors.New("Invalid input")
)

// parseID reads the :id route parameter as a positive integer
func parseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// field pairs a request field name with whether it was supplied
type field struct {
	name    string
	present bool
}

// requireFields returns an error naming every absent field, in order
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("Invalid input: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// validationError sends a 422 for malformed or incomplete input
func validationError(c *fiber.Ctx, message string) error {
	return utils.ErrorResponse(c, message, fiber.StatusUnprocessableEntity, "validation")
}

// serviceError maps service errors onto HTTP responses. entity names the
// record kind for not-found messages; op tags unexpected failures.
func serviceError(c *fiber.Ctx, err error, entity, op string) error {
	message := err.Error()
	if message != "" {
		message = strings.ToUpper(message[:1]) + message[1:]
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, entity+" not found")
	case errors.Is(err, services.ErrValidation):
		return validationError(c, message)
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrDuplicateUsername):
		return utils.ErrorResponse(c, message, fiber.StatusBadRequest, "duplicate")
	case errors.Is(err, services.ErrReferencedByListings):
		return utils.ErrorResponse(c, message, fiber.StatusBadRequest, "referenced")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, message, fiber.StatusUnauthorized, "credentials")
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
}
