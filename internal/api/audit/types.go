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
	"time"

	"github.com/labstack/echo/v4"
)

// Error codes returned in the error envelope.
const (
	CodeValidationFailed      = "AUDIT_VALIDATION_FAILED"
	CodeMissingQueryParameter = "MISSING_QUERY_PARAMETER"
	CodeNotFound              = "AUDIT_LOG_NOT_FOUND"
	CodeCreationFailed        = "AUDIT_CREATION_FAILED"
	CodeRetrievalFailed       = "AUDIT_RETRIEVAL_FAILED"
)

// Envelope wraps every successful response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorBody carries the failure details inside an ErrorEnvelope.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every failed response.
type ErrorEnvelope struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// OutcomeData is the payload returned by the outcome-convenience
// endpoints, which expose only the new entry id.
type OutcomeData struct {
	AuditID string `json:"auditId"`
}

// LogOutcomeRequest is the request body for the outcome-convenience
// endpoints.
type LogOutcomeRequest struct {
	Actor    string         `json:"actor"              validate:"required"`
	Action   string         `json:"action"             validate:"required,audit_action"`
	Entity   string         `json:"entity"             validate:"required"`
	Message  string         `json:"message,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// errorResponse writes the error envelope with the given HTTP status.
func errorResponse(
	c echo.Context,
	status int,
	message string,
	code string,
	details any,
) error {
	return c.JSON(status, ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Message: message,
			Code:    code,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
