package store

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/GuiaBolso/darwin"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migrations returns the embedded schema migrations. A file named
// 002_add_duration.sql becomes version 2 with description "add duration".
func Migrations() ([]darwin.Migration, error) {
	entries, err := fs.ReadDir(sqlFiles, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	migrations := make([]darwin.Migration, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".sql" {
			continue
		}

		prefix, rest, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
		if !ok {
			return nil, fmt.Errorf("migration %s lacks a version prefix", name)
		}
		version, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s has an invalid version: %w", name, err)
		}

		script, err := sqlFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		migrations = append(migrations, darwin.Migration{
			Version:     version,
			Description: strings.ReplaceAll(rest, "_", " "),
			Script:      string(script),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// Migrate applies all pending migrations to db
func Migrate(db *sql.DB) error {
	migrations, err := Migrations()
	if err != nil {
		return err
	}

	driver := darwin.NewGenericDriver(db, darwin.SqliteDialect{})
	return darwin.New(driver, migrations, nil).Migrate()
}
