// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package audit

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	auditsvc "github.com/ledgerd-io/ledgerd/internal/audit"
	"github.com/ledgerd-io/ledgerd/internal/validation"
)

// logOutcomeHandler returns the handler for a single outcome level
// endpoint, e.g. POST /audit/success.
func (a *Audit) logOutcomeHandler(
	level auditsvc.Level,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LogOutcomeRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(
				c,
				http.StatusBadRequest,
				"invalid request body",
				CodeValidationFailed,
				err.Error(),
			)
		}

		if fields, ok := validation.Struct(req); !ok {
			return errorResponse(
				c,
				http.StatusBadRequest,
				"audit log validation failed",
				CodeValidationFailed,
				fields,
			)
		}

		id, err := a.service.LogOutcome(
			c.Request().Context(),
			level,
			req.Actor,
			auditsvc.Action(req.Action),
			req.Entity,
			req.Message,
			req.Metadata,
		)
		if err != nil {
			a.logger.Error(
				"failed to log audit outcome",
				slog.String("level", string(level)),
				slog.String("error", err.Error()),
			)

			return errorResponse(
				c,
				http.StatusInternalServerError,
				"failed to log audit outcome",
				CodeCreationFailed,
				err.Error(),
			)
		}

		return c.JSON(http.StatusCreated, Envelope{
			Success: true,
			Data:    OutcomeData{AuditID: id},
			Message: "audit log created successfully",
		})
	}
}
