// common.go
//
// DecideForMe decision assistant data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of decideforme.
// decideforme is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// decideforme is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with decideforme.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/middleware"
	"github.com/localnerve/decideforme/internal/services"
	"github.com/localnerve/decideforme/internal/types"
	"github.com/localnerve/decideforme/internal/utils"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodes the JSON body into out and validates its struct tags
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.BadRequest("Invalid input", "data.validation.input")
	}
	if err := validate.Struct(out); err != nil {
		return types.BadRequest(validationMessage(err), "data.validation.input")
	}
	return nil
}

// validationMessage lists the failed fields of a validator error
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid input"
	}

	failed := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		failed = append(failed, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return "Invalid input: " + strings.Join(failed, ", ")
}

// session returns the services of the request's profile
func session(c *fiber.Ctx) *services.Session {
	s := middleware.Session(c)
	if s == nil {
		panic("handlers: profile middleware not installed")
	}
	return s
}

// ErrorHandler renders every error a handler returns in the standard envelope.
// Version conflicts, superseded AI answers and a busy wheel map to 409.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code, message, errorType = customErr.Code, customErr.Message, customErr.Type
	case errors.As(err, &fiberErr):
		code, message = fiberErr.Code, fiberErr.Message
	case errors.Is(err, kvstore.ErrVersion):
		return utils.VersionErrorResponse(c)
	case errors.Is(err, ai.ErrStale):
		code, message, errorType = fiber.StatusConflict, "Superseded by a newer request", "ai.stale"
	case errors.Is(err, services.ErrSpinInProgress):
		code, errorType = fiber.StatusConflict, "spin.busy"
	case errors.Is(err, services.ErrNoOptions):
		code, errorType = fiber.StatusBadRequest, "spin.options"
	case errors.Is(err, context.DeadlineExceeded):
		code, errorType = fiber.StatusGatewayTimeout, "timeout"
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.OriginalURL(), err)
	}
	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound is the fallback route
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
