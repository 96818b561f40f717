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

package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	auditapi "github.com/ledgerd-io/ledgerd/internal/api/audit"
	"github.com/ledgerd-io/ledgerd/internal/api/health"
)

// GetAuditHandler returns the audit handler for registration.
func (s *Server) GetAuditHandler(
	service auditapi.Service,
) []func(e *echo.Echo) {
	auditHandler := auditapi.New(s.logger, service)

	return []func(e *echo.Echo){
		auditHandler.RegisterRoutes,
	}
}

// GetHealthHandler returns the health handler for registration.
func (s *Server) GetHealthHandler(
	startTime time.Time,
	version string,
) []func(e *echo.Echo) {
	healthHandler := health.New(s.logger, startTime, version)

	return []func(e *echo.Echo){
		healthHandler.RegisterRoutes,
	}
}

// GetMetricsHandler returns the Prometheus metrics handler for registration.
func (s *Server) GetMetricsHandler(
	metricsHandler http.Handler,
	path string,
) []func(e *echo.Echo) {
	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET(path, echo.WrapHandler(metricsHandler))
		},
	}
}
