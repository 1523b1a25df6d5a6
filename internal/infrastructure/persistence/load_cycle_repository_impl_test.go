package persistence

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agoralab-core/internal/config"
	"agoralab-core/internal/database"
	"agoralab-core/internal/domain/listing"
)

// openTestDB connects to the database named by TEST_DB_DSN, skipping when it is unset
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, &config.DatabaseConfig{Driver: "postgres", DSN: dsn, MaxConns: 2, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func TestLoadCycleRepoImplSaveAndFindRecent(t *testing.T) {
	db := openTestDB(t)
	r := NewLoadCycleRepository(db)
	ctx := context.Background()

	// far in the future so these rows sort ahead of anything already stored
	base := time.Now().Add(100 * 365 * 24 * time.Hour).Truncate(time.Microsecond).UTC()
	older, err := listing.NewLoadCycle(listing.NewCycleID(), listing.StatusLoaded, 3, 17, nil, false, base, base.Add(250*time.Millisecond))
	require.NoError(t, err)
	newer, err := listing.NewLoadCycle(listing.NewCycleID(), listing.StatusFailed, 3, 0,
		errors.New("FETCH_FAILURE: failed to fetch repositories for beta"), true, base.Add(time.Second), base.Add(2*time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.GetConnection().ExecContext(context.Background(),
			`DELETE FROM load_cycles WHERE id IN ($1, $2)`, older.ID().UUID(), newer.ID().UUID())
	})

	require.NoError(t, r.Save(ctx, older))
	require.NoError(t, r.Save(ctx, newer))
	require.NoError(t, r.Save(ctx, newer), "saving a cycle twice is a no-op")

	recent, err := r.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	got := recent[0]
	assert.True(t, got.ID().Equals(newer.ID()))
	assert.Equal(t, listing.StatusFailed, got.Status())
	assert.Equal(t, 3, got.OrgCount())
	assert.Equal(t, 0, got.RecordCount())
	assert.True(t, got.Discarded())
	require.NotNil(t, got.Failure())
	assert.Equal(t, *newer.Failure(), *got.Failure())
	assert.True(t, got.StartedAt().Equal(newer.StartedAt()))
	assert.True(t, got.FinishedAt().Equal(newer.FinishedAt()))

	got = recent[1]
	assert.True(t, got.ID().Equals(older.ID()))
	assert.Equal(t, listing.StatusLoaded, got.Status())
	assert.Equal(t, 17, got.RecordCount())
	assert.False(t, got.Discarded())
	assert.Nil(t, got.Failure())
	assert.Equal(t, 250*time.Millisecond, got.Duration())
}
