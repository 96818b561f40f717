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

// Package health provides health check API handlers.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health implementation of the health API operations.
type Health struct {
	// StartTime records when the server started.
	StartTime time.Time
	// Version is the application version string.
	Version string
	logger  *slog.Logger
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	startTime time.Time,
	version string,
) *Health {
	return &Health{
		StartTime: startTime,
		Version:   version,
		logger:    logger,
	}
}

// RegisterRoutes registers the health endpoints with the Echo instance.
func (h *Health) RegisterRoutes(
	e *echo.Echo,
) {
	e.GET("/health", h.GetHealth)
	e.GET("/health/status", h.GetHealthStatus)
}

// GetHealth is the liveness probe.
func (h *Health) GetHealth(
	c echo.Context,
) error {
	return c.JSON(http.StatusOK, LivenessResponse{Status: "ok"})
}

// GetHealthStatus reports version and uptime.
func (h *Health) GetHealthStatus(
	c echo.Context,
) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Version: h.Version,
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
	})
}
