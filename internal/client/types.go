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

package client

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ledgerd-io/ledgerd/internal/config"
)

// Client talks to the ledger REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	appConfig  config.Config
}

// AuditEntry is an audit record as returned by the API.
type AuditEntry struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Actor     string         `json:"actor"`
	TenantID  string         `json:"tenantId"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"createdAt"`
}

// AuditSubmission is the request body for creating an audit record.
type AuditSubmission struct {
	Timestamp string         `json:"timestamp"`
	Actor     string         `json:"actor"`
	TenantID  string         `json:"tenantId"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// OutcomeRequest is the request body for the outcome-convenience endpoints.
type OutcomeRequest struct {
	Actor    string         `json:"actor"`
	Action   string         `json:"action"`
	Entity   string         `json:"entity"`
	Message  string         `json:"message,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ErrorBody carries failure details returned by the API.
type ErrorBody struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details,omitempty"`
}

// Envelope is the generic API response wrapper. Data is decoded by the
// per-operation response types.
type Envelope[T any] struct {
	Success   bool       `json:"success"`
	Data      T          `json:"data"`
	Message   string     `json:"message"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
}

// AuditEntryResponse is the decoded response for single-entry operations.
type AuditEntryResponse struct {
	StatusCode int
	Body       Envelope[*AuditEntry]
}

// AuditListResponse is the decoded response for list operations.
type AuditListResponse struct {
	StatusCode int
	Body       Envelope[[]AuditEntry]
}

// OutcomeResponse is the decoded response for outcome operations.
type OutcomeResponse struct {
	StatusCode int
	Body       Envelope[struct {
		AuditID string `json:"auditId"`
	}]
}

// HealthResponse is the decoded response for the liveness endpoint.
type HealthResponse struct {
	StatusCode int
	Status     string `json:"status"`
}

// HealthStatusResponse is the decoded response for the status endpoint.
type HealthStatusResponse struct {
	StatusCode int
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
}
