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

package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	natsclient "github.com/osapi-io/nats-client/pkg/client"

	"github.com/ledgerd-io/ledgerd/internal/api"
	auditapi "github.com/ledgerd-io/ledgerd/internal/api/audit"
	"github.com/ledgerd-io/ledgerd/internal/audit"
	"github.com/ledgerd-io/ledgerd/internal/cli"
	"github.com/ledgerd-io/ledgerd/internal/messaging"
	"github.com/ledgerd-io/ledgerd/internal/sink"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetAuditHandler returns the audit handler for registration.
	GetAuditHandler(service auditapi.Service) []func(e *echo.Echo)
	// GetHealthHandler returns the health handler for registration.
	GetHealthHandler(startTime time.Time, version string) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// setupAPIServer builds the audit backend per configuration, creates the
// API server with all handlers, and returns the server manager plus the
// NATS client when the nats backend is active (nil otherwise).
func setupAPIServer(
	log *slog.Logger,
	metricsHandler http.Handler,
	metricsPath string,
) (ServerManager, messaging.NATSClient) {
	store, nc := buildAuditStore(log)
	service := audit.NewService(log, store, appConfig.Audit.DefaultTenantID)

	sm := api.New(appConfig, log)
	registerAPIHandlers(sm, service, metricsHandler, metricsPath)

	return sm, nc
}

// buildAuditStore selects the ledger backend. The memory backend keeps
// records in process; the nats backend delegates to the KV-based sink
// with two-phase create semantics.
func buildAuditStore(
	log *slog.Logger,
) (audit.Store, messaging.NATSClient) {
	switch appConfig.Audit.Backend {
	case "nats":
		var nc messaging.NATSClient = natsclient.New(log, &natsclient.Options{
			Host: appConfig.API.Server.NATS.Host,
			Port: appConfig.API.Server.NATS.Port,
			Auth: cli.BuildNATSAuthOptions(appConfig.API.Server.NATS.Auth),
			Name: appConfig.API.Server.NATS.ClientName,
		})

		if err := nc.Connect(); err != nil {
			cli.LogFatal(log, "failed to connect to NATS", err)
		}

		auditKV, err := nc.CreateKVBucket(appConfig.NATS.Audit.Bucket)
		if err != nil {
			cli.LogFatal(log, "failed to create audit KV bucket", err)
		}

		sinkLogger := sink.NewKVLogger(log, auditKV, sink.Options{
			ServiceName:     appConfig.Audit.ServiceName,
			Environment:     appConfig.Audit.Environment,
			DefaultTenantID: appConfig.Audit.DefaultTenantID,
		})

		return audit.NewSinkStore(log, sinkLogger), nc
	default:
		return audit.NewMemoryStore(log), nil
	}
}

func registerAPIHandlers(
	sm ServerManager,
	service auditapi.Service,
	metricsHandler http.Handler,
	metricsPath string,
) {
	startTime := time.Now()

	handlers := make([]func(e *echo.Echo), 0, 3)
	handlers = append(handlers, sm.GetAuditHandler(service)...)
	handlers = append(
		handlers,
		sm.GetHealthHandler(startTime, buildVersion().GitVersion)...)
	handlers = append(handlers, sm.GetMetricsHandler(metricsHandler, metricsPath)...)

	sm.RegisterHandlers(handlers)
}
