package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"contra-api/internal/config"
	"contra-api/internal/logger"
)

func NewServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Run serves until ctx is done, then shuts the server down within
// cfg.ShutdownTimeout.
func Run(ctx context.Context, server *http.Server, cfg config.ServerConfig, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Contra API listening on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("HTTP", "✅ Contra API shutdown complete")
	return nil
}
