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
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	auditsvc "github.com/ledgerd-io/ledgerd/internal/audit"
)

// GetAuditLogs lists audit records filtered by exactly one of the
// tenantId or actor query parameters.
func (a *Audit) GetAuditLogs(
	c echo.Context,
) error {
	tenantID := c.QueryParam("tenantId")
	actor := c.QueryParam("actor")

	responses, err := a.service.List(c.Request().Context(), tenantID, actor)
	if err != nil {
		if errors.Is(err, auditsvc.ErrMissingFilter) ||
			errors.Is(err, auditsvc.ErrAmbiguousFilter) {
			return errorResponse(
				c,
				http.StatusBadRequest,
				err.Error(),
				CodeMissingQueryParameter,
				nil,
			)
		}

		a.logger.Error(
			"failed to list audit logs",
			slog.String("error", err.Error()),
		)

		return errorResponse(
			c,
			http.StatusInternalServerError,
			"failed to list audit logs",
			CodeRetrievalFailed,
			err.Error(),
		)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    responses,
		Message: fmt.Sprintf("found %d audit logs", len(responses)),
	})
}
