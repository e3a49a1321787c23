package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contra-api/internal/logger"

	"github.com/uptrace/bun"
)

// QueryHook logs every query bun executes with its duration.
type QueryHook struct {
	logger *logger.Logger
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(log *logger.Logger) *QueryHook {
	return &QueryHook{logger: log}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	took := time.Since(event.StartTime).Round(time.Microsecond)
	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		h.logger.Error("DATABASE", fmt.Sprintf("[%s] %s (%s): %v", event.Operation(), event.Query, took, event.Err))
		return
	}
	h.logger.LogDatabase(event.Operation(), event.Query, took.String())
}
