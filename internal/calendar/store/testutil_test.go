package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// SetupTestStore opens an in-memory journal with a fixed clock
func SetupTestStore(t *testing.T, now time.Time) *SQLiteJournalStore {
	t.Helper()

	s, err := NewSQLiteJournalStore(Config{Path: MemoryPath})
	require.NoError(t, err, "Failed to create test journal")

	s.now = func() time.Time { return now }
	t.Cleanup(func() {
		require.NoError(t, s.Close(), "Failed to close test journal")
	})
	return s
}
