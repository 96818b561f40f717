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
	"context"
)

// CombinedHandler is a superset of all smaller handler interfaces.
type CombinedHandler interface {
	HealthHandler
	AuditHandler
}

// HealthHandler defines an interface for interacting with Health client operations.
type HealthHandler interface {
	// GetHealth get the health liveness API endpoint.
	GetHealth(
		ctx context.Context,
	) (*HealthResponse, error)
	// GetHealthStatus get the health status API endpoint.
	GetHealthStatus(
		ctx context.Context,
	) (*HealthStatusResponse, error)
}

// AuditHandler defines an interface for interacting with Audit client operations.
type AuditHandler interface {
	// CreateAuditLog creates a new audit record via the REST API.
	CreateAuditLog(
		ctx context.Context,
		sub AuditSubmission,
	) (*AuditEntryResponse, error)

	// GetAuditLogByID retrieves a specific audit record by ID via the REST API.
	GetAuditLogByID(
		ctx context.Context,
		id string,
	) (*AuditEntryResponse, error)

	// GetAuditLogs retrieves audit records filtered by tenant or actor via
	// the REST API. Exactly one filter must be set.
	GetAuditLogs(
		ctx context.Context,
		tenantID string,
		actor string,
	) (*AuditListResponse, error)

	// LogOutcome records a minimal audit event at the given outcome level
	// via the REST API.
	LogOutcome(
		ctx context.Context,
		level string,
		req OutcomeRequest,
	) (*OutcomeResponse, error)
}

// Ensure Client implements CombinedHandler interface.
var _ CombinedHandler = (*Client)(nil)
