package main

import (
	"context"
	"database/sql"
	"testing"

	"contra-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupSeedDB(t *testing.T) *bun.DB {
	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	require.NoError(t, createTables(ctx, db))
	require.NoError(t, createTables(ctx, db))

	n, err := seedUsers(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleUsers()), n)

	n, err = seedUsers(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	count, err := db.NewSelect().Model((*models.User)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleUsers()), count)
}

func TestSampleUsersHaveUniqueIDsAndEmails(t *testing.T) {
	ids := map[string]bool{}
	emails := map[string]bool{}
	for _, u := range sampleUsers() {
		assert.False(t, ids[u.ID], "duplicate id %s", u.ID)
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		ids[u.ID] = true
		emails[u.Email] = true
	}
}
