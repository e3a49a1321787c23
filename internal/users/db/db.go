package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contra-api/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

// ListUsers returns every user in the list projection. No ordering is applied.
func (d *DB) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := d.Bun.NewSelect().
		Model(&users).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUserByID returns the detail projection for id, or nil when no row matches.
func (d *DB) GetUserByID(ctx context.Context, id string) (*models.UserDetail, error) {
	var user models.UserDetail
	err := d.Bun.NewSelect().
		Model(&user).
		Where("u.id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

// Ping checks the underlying connection.
func (d *DB) Ping(ctx context.Context) error {
	return d.Bun.PingContext(ctx)
}
