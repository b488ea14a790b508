// Package testutil opens throwaway SQLite stores for integration tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/database"
	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/persistence"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// NewSQLiteStore returns a Store over a fresh SQLite file with the schema created
func NewSQLiteStore(t testing.TB) *persistence.Store {
	t.Helper()
	conn := NewSQLiteConnection(t)
	require.NoError(t, persistence.NewSchemaRepository(conn.DB(), constants.DriverSQLite).CreateTables(context.Background()))
	return persistence.NewStore(conn)
}

// NewSQLiteConnection opens an empty SQLite database closed at test cleanup
func NewSQLiteConnection(t testing.TB) *database.Connection {
	t.Helper()
	conn, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "forms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
