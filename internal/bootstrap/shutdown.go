package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PlantCare_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  *Store
}

// GracefulShutdown stops the HTTP server, letting in-flight requests
// finish, and then closes the store they were using.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgClosingStore)
	if err := components.Store.Close(); err != nil {
		slog.Error(ErrMsgFailedCloseStore, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
