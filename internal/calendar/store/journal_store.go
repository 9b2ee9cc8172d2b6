package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

// MemoryPath opens a private in-memory journal
const MemoryPath = ":memory:"

// Entry is one recorded calendar computation
type Entry struct {
	ID           string                 `json:"id"`
	CreatedAt    time.Time              `json:"created_at"`
	Operation    string                 `json:"operation"`
	RequestID    string                 `json:"request_id,omitempty"`
	Input        map[string]interface{} `json:"input,omitempty"`
	Output       map[string]interface{} `json:"output,omitempty"`
	ErrorCode    string                 `json:"error_code,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Duration     time.Duration          `json:"duration"`
}

// Failed reports whether the computation returned an error
func (e *Entry) Failed() bool {
	return e.ErrorCode != "" || e.ErrorMessage != ""
}

// Filter defines criteria for querying the journal
type Filter struct {
	Operation  string
	RequestID  string
	Since      time.Time
	Until      time.Time
	FailedOnly bool
	Limit      int
	Offset     int
}

// Stats summarizes the journal
type Stats struct {
	Total       int64            `json:"total"`
	Failed      int64            `json:"failed"`
	ByOperation map[string]int64 `json:"by_operation"`
}

// JournalStore defines the interface for journal persistence
type JournalStore interface {
	Record(ctx context.Context, entry *Entry) error
	Query(ctx context.Context, filter Filter) ([]*Entry, error)
	Stats(ctx context.Context) (*Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Config holds configuration for the SQLite journal
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/journal.db",
	}
}

// SQLiteJournalStore implements JournalStore using SQLite
type SQLiteJournalStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

var _ JournalStore = (*SQLiteJournalStore)(nil)

// NewSQLiteJournalStore opens the journal at cfg.Path and migrates its schema
func NewSQLiteJournalStore(cfg Config) (*SQLiteJournalStore, error) {
	const op = "store.NewSQLiteJournalStore"

	if cfg.Path == "" {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleJournal, op, "journal path must not be empty")
	}

	dsn := cfg.Path
	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, databaseError(err, op, "failed to create directory")
		}
		dsn = cfg.Path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, databaseError(err, op, "failed to open database")
	}
	if cfg.Path == MemoryPath {
		// every connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, databaseError(err, op, "failed to migrate schema")
	}

	return &SQLiteJournalStore{db: db, now: time.Now}, nil
}

func databaseError(err error, operation, message string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}

func encodeJSON(value map[string]interface{}) (sql.NullString, error) {
	if len(value) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Record stores entry. Missing IDs and timestamps are filled in.
func (s *SQLiteJournalStore) Record(ctx context.Context, entry *Entry) error {
	const op = "store.Record"

	if entry == nil || entry.Operation == "" {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleJournal, op, "entry needs an operation")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	input, err := encodeJSON(entry.Input)
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode input").WithCode(mdwerror.CodeInvalidInput).WithOperation(op)
	}
	output, err := encodeJSON(entry.Output)
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode output").WithCode(mdwerror.CodeInvalidInput).WithOperation(op)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO journal (id, created_at, operation, request_id, input, output, error_code, error_message, duration_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.CreatedAt, entry.Operation, nullString(entry.RequestID), input, output,
		nullString(entry.ErrorCode), nullString(entry.ErrorMessage), entry.Duration.Microseconds())
	if err != nil {
		return databaseError(err, op, "failed to insert journal entry")
	}

	return nil
}

// Query returns entries matching filter, newest first
func (s *SQLiteJournalStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	const op = "store.Query"

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, created_at, operation, request_id, input, output, error_code, error_message, duration_us FROM journal WHERE 1=1`
	var args []interface{}

	if filter.Operation != "" {
		query += " AND operation = ?"
		args = append(args, filter.Operation)
	}
	if filter.RequestID != "" {
		query += " AND request_id = ?"
		args = append(args, filter.RequestID)
	}
	if !filter.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.Since.UTC())
	}
	if !filter.Until.IsZero() {
		query += " AND created_at <= ?"
		args = append(args, filter.Until.UTC())
	}
	if filter.FailedOnly {
		query += " AND (error_code IS NOT NULL OR error_message IS NOT NULL)"
	}

	query += " ORDER BY created_at DESC, id"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	} else if filter.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, databaseError(err, op, "failed to query journal")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var requestID, input, output, errorCode, errorMessage sql.NullString
		var durationUS int64

		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.Operation, &requestID,
			&input, &output, &errorCode, &errorMessage, &durationUS); err != nil {
			return nil, databaseError(err, op, "failed to scan journal entry")
		}

		entry.RequestID = requestID.String
		entry.ErrorCode = errorCode.String
		entry.ErrorMessage = errorMessage.String
		entry.Duration = time.Duration(durationUS) * time.Microsecond
		if input.Valid {
			if err := json.Unmarshal([]byte(input.String), &entry.Input); err != nil {
				return nil, databaseError(err, op, "failed to decode journal input")
			}
		}
		if output.Valid {
			if err := json.Unmarshal([]byte(output.String), &entry.Output); err != nil {
				return nil, databaseError(err, op, "failed to decode journal output")
			}
		}

		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, databaseError(err, op, "failed to read journal")
	}

	return entries, nil
}

// Stats counts entries in total, failed and per operation
func (s *SQLiteJournalStore) Stats(ctx context.Context) (*Stats, error) {
	const op = "store.Stats"

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{ByOperation: make(map[string]int64)}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN error_code IS NOT NULL OR error_message IS NOT NULL THEN 1 ELSE 0 END), 0)
		FROM journal
	`).Scan(&stats.Total, &stats.Failed)
	if err != nil {
		return nil, databaseError(err, op, "failed to count journal entries")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT operation, COUNT(*) FROM journal GROUP BY operation`)
	if err != nil {
		return nil, databaseError(err, op, "failed to group journal entries")
	}
	defer rows.Close()

	for rows.Next() {
		var operation string
		var count int64
		if err := rows.Scan(&operation, &count); err != nil {
			return nil, databaseError(err, op, "failed to scan journal statistics")
		}
		stats.ByOperation[operation] = count
	}
	if err := rows.Err(); err != nil {
		return nil, databaseError(err, op, "failed to read journal statistics")
	}

	return stats, nil
}

// Prune removes entries older than the specified duration
func (s *SQLiteJournalStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	const op = "store.Prune"

	if olderThan < 0 {
		return 0, mdwerrors.InvalidArgument(mdwerrors.ModuleJournal, op, "retention must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-olderThan).UTC()

	result, err := s.db.ExecContext(ctx, `DELETE FROM journal WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, databaseError(err, op, "failed to prune journal")
	}
	return rowsAffected(result, op)
}

func rowsAffected(result sql.Result, operation string) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, databaseError(err, operation, "failed to count affected rows")
	}
	return n, nil
}

// Ping verifies the database connection
func (s *SQLiteJournalStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return databaseError(err, "store.Ping", "journal database unreachable")
	}
	return nil
}

// Close closes the database
func (s *SQLiteJournalStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
