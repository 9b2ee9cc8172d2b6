package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/GuiaBolso/darwin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

var baseTime = time.Date(2023, 11, 17, 12, 0, 0, 0, time.UTC)

func TestMigrations(t *testing.T) {
	migrations, err := Migrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1.0, migrations[0].Version)
	assert.Equal(t, "create journal", migrations[0].Description)
	assert.Equal(t, 2.0, migrations[1].Version)
	assert.Contains(t, migrations[1].Script, "duration_us")
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "second run must not reapply migrations")

	migrations, err := Migrations()
	require.NoError(t, err)
	infos, err := darwin.Info(darwin.NewGenericDriver(db, darwin.SqliteDialect{}), migrations)
	require.NoError(t, err)
	for _, info := range infos {
		assert.Equal(t, darwin.Applied, info.Status, "migration %v", info.Migration.Version)
	}
}

func TestJournalStore_RecordAndQuery(t *testing.T) {
	s := SetupTestStore(t, baseTime)
	ctx := context.Background()

	entry := &Entry{
		Operation: "RetreatWorkingDays",
		RequestID: "req-1",
		Input:     map[string]interface{}{"date": "2023-12-29", "days": 30},
		Output:    map[string]interface{}{"date": "2023-11-17"},
		Duration:  1500 * time.Microsecond,
	}
	require.NoError(t, s.Record(ctx, entry))

	assert.Len(t, entry.ID, 36, "Expected a UUID to be assigned")
	assert.True(t, entry.CreatedAt.Equal(baseTime))

	entries, err := s.Query(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "RetreatWorkingDays", got.Operation)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "2023-12-29", got.Input["date"])
	assert.Equal(t, float64(30), got.Input["days"])
	assert.Equal(t, "2023-11-17", got.Output["date"])
	assert.Equal(t, 1500*time.Microsecond, got.Duration)
	assert.True(t, got.CreatedAt.Equal(baseTime))
	assert.False(t, got.Failed())
}

func TestJournalStore_RecordInvalid(t *testing.T) {
	s := SetupTestStore(t, baseTime)

	err := s.Record(context.Background(), &Entry{})
	assert.True(t, mdwerrors.IsInvalidArgument(err))

	err = s.Record(context.Background(), nil)
	assert.True(t, mdwerrors.IsInvalidArgument(err))
}

func TestJournalStore_QueryFilters(t *testing.T) {
	s := SetupTestStore(t, baseTime)
	ctx := context.Background()

	records := []*Entry{
		{Operation: "OrdinalWords", CreatedAt: baseTime.Add(-3 * time.Hour), RequestID: "a"},
		{Operation: "OrdinalWords", CreatedAt: baseTime.Add(-2 * time.Hour), ErrorCode: "INVALID_ARGUMENT", ErrorMessage: "negative"},
		{Operation: "AdvanceWorkingDays", CreatedAt: baseTime.Add(-1 * time.Hour), RequestID: "b"},
		{Operation: "FormatSpoken", CreatedAt: baseTime},
	}
	for _, r := range records {
		require.NoError(t, s.Record(ctx, r))
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"newest first", Filter{}, []string{"FormatSpoken", "AdvanceWorkingDays", "OrdinalWords", "OrdinalWords"}},
		{"operation", Filter{Operation: "OrdinalWords"}, []string{"OrdinalWords", "OrdinalWords"}},
		{"request id", Filter{RequestID: "b"}, []string{"AdvanceWorkingDays"}},
		{"failed only", Filter{FailedOnly: true}, []string{"OrdinalWords"}},
		{"since", Filter{Since: baseTime.Add(-90 * time.Minute)}, []string{"FormatSpoken", "AdvanceWorkingDays"}},
		{"until", Filter{Until: baseTime.Add(-150 * time.Minute)}, []string{"OrdinalWords"}},
		{"limit", Filter{Limit: 2}, []string{"FormatSpoken", "AdvanceWorkingDays"}},
		{"limit offset", Filter{Limit: 1, Offset: 1}, []string{"AdvanceWorkingDays"}},
		{"offset only", Filter{Offset: 3}, []string{"OrdinalWords"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.Query(ctx, tt.filter)
			require.NoError(t, err)

			got := make([]string, 0, len(entries))
			for _, e := range entries {
				got = append(got, e.Operation)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJournalStore_Stats(t *testing.T) {
	s := SetupTestStore(t, baseTime)
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByOperation)

	require.NoError(t, s.Record(ctx, &Entry{Operation: "OrdinalWords"}))
	require.NoError(t, s.Record(ctx, &Entry{Operation: "OrdinalWords", ErrorCode: "INVALID_ARGUMENT"}))
	require.NoError(t, s.Record(ctx, &Entry{Operation: "MatchDigitOrdinal"}))

	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Equal(t, map[string]int64{"OrdinalWords": 2, "MatchDigitOrdinal": 1}, stats.ByOperation)
}

func TestJournalStore_Prune(t *testing.T) {
	s := SetupTestStore(t, baseTime)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &Entry{Operation: "old", CreatedAt: baseTime.Add(-48 * time.Hour)}))
	require.NoError(t, s.Record(ctx, &Entry{Operation: "recent", CreatedAt: baseTime.Add(-time.Hour)}))

	deleted, err := s.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	entries, err := s.Query(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "recent", entries[0].Operation)

	_, err = s.Prune(ctx, -time.Hour)
	assert.True(t, mdwerrors.IsInvalidArgument(err))
}

type brokenResult struct{}

func (brokenResult) LastInsertId() (int64, error) { return 0, errors.New("unsupported") }
func (brokenResult) RowsAffected() (int64, error) { return 0, errors.New("unsupported") }

func TestRowsAffected_Error(t *testing.T) {
	n, err := rowsAffected(brokenResult{}, "store.Prune")
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDatabaseError))
}

func TestJournalStore_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	ctx := context.Background()

	s, err := NewSQLiteJournalStore(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, &Entry{Operation: "OrdinalWords"}))
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteJournalStore(Config{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Query(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewSQLiteJournalStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteJournalStore(Config{})
	assert.True(t, mdwerrors.IsInvalidArgument(err))
}
