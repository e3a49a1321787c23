package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"contra-api/internal/config"
	"contra-api/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestNewServerUsesConfig(t *testing.T) {
	cfg := config.ServerConfig{Port: 3000, ReadTimeout: time.Second, WriteTimeout: 2 * time.Second, IdleTimeout: 3 * time.Second}

	srv := NewServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":3000", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	cfg := config.ServerConfig{Port: 0, ShutdownTimeout: time.Second}
	srv := NewServer(cfg, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, srv, cfg, logger.NewConsoleLogger(nil))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenError(t *testing.T) {
	cfg := config.ServerConfig{ShutdownTimeout: time.Second}
	srv := NewServer(cfg, http.NotFoundHandler())
	srv.Addr = "bad-address:-1"

	err := Run(context.Background(), srv, cfg, logger.NewConsoleLogger(nil))

	assert.Error(t, err)
}
