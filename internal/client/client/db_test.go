package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "prefs.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO preferences(key, value) VALUES('theme', 'dark')`)
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM preferences WHERE key='theme'`).Scan(&v))
	require.Equal(t, "dark", v)
}

func TestInitDatabase_MigrationsAreIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not fail on an already-migrated database.
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
}

func TestInitDatabase_BadPath_Fails(t *testing.T) {
	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "missing", "sub", "prefs.db"))
	require.Error(t, err)
}
