package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/db"
)

// TestTable is the table name used by test databases.
const TestTable = "flashcards"

// NewTestDB creates an in-memory SQLite database with the flashcards table.
// A single connection is kept so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.EnsureSchema(context.Background(), conn, TestTable), "failed to create test table")
	return conn
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
