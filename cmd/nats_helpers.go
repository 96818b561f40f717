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
	"context"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"

	"github.com/ledgerd-io/ledgerd/internal/cli"
)

// natsReadyTimeout is how long to wait for the embedded server to accept
// connections before giving up.
const natsReadyTimeout = 10 * time.Second

// natsLifecycle adapts the embedded NATS server to the Lifecycle interface.
type natsLifecycle struct {
	server *server.Server
	logger *slog.Logger
}

// Start starts the embedded server without blocking.
func (n *natsLifecycle) Start() {
	go n.server.Start()

	if !n.server.ReadyForConnections(natsReadyTimeout) {
		n.logger.Error("nats server not ready for connections")
		return
	}

	n.logger.Info(
		"nats server ready",
		slog.String("url", n.server.ClientURL()),
	)
}

// Stop shuts the embedded server down and waits for it to drain.
func (n *natsLifecycle) Stop(
	_ context.Context,
) {
	n.logger.Info("stopping nats server")
	n.server.Shutdown()
	n.server.WaitForShutdown()
}

// setupNATSServer builds the embedded NATS server with JetStream enabled
// so the audit KV bucket has a place to live.
func setupNATSServer(
	log *slog.Logger,
) *server.Server {
	opts := &server.Options{
		Host:      appConfig.NATS.Server.Host,
		Port:      appConfig.NATS.Server.Port,
		JetStream: true,
		StoreDir:  appConfig.NATS.Server.StoreDir,
	}

	s, err := server.NewServer(opts)
	if err != nil {
		cli.LogFatal(log, "failed to create nats server", err)
	}

	return s
}
