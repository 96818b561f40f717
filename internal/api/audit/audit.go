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

// Package audit provides the HTTP handlers for the audit ledger endpoints.
package audit

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	auditsvc "github.com/ledgerd-io/ledgerd/internal/audit"
)

// Service is the audit service facade consumed by the handlers.
type Service interface {
	// Create validates and persists a submission.
	Create(ctx context.Context, sub auditsvc.Submission) (*auditsvc.Response, error)
	// Get retrieves a record by id.
	Get(ctx context.Context, id string) (*auditsvc.Response, error)
	// List queries by exactly one of tenantID or actor.
	List(ctx context.Context, tenantID, actor string) ([]auditsvc.Response, error)
	// LogOutcome records a minimal audit event and returns its id.
	LogOutcome(
		ctx context.Context,
		level auditsvc.Level,
		actor string,
		action auditsvc.Action,
		entity string,
		message string,
		metadata map[string]any,
	) (string, error)
}

// Audit holds the handler dependencies.
type Audit struct {
	service Service
	logger  *slog.Logger
}

// New creates a new Audit handler.
func New(
	logger *slog.Logger,
	service Service,
) *Audit {
	return &Audit{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the audit endpoints with the Echo instance.
func (a *Audit) RegisterRoutes(
	e *echo.Echo,
) {
	e.POST("/audit", a.CreateAuditLog)
	e.GET("/audit", a.GetAuditLogs)
	e.GET("/audit/:id", a.GetAuditLogByID)

	for _, level := range auditsvc.Levels {
		e.POST("/audit/"+string(level), a.logOutcomeHandler(level))
	}
}
