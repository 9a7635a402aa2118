package sqlitemigrate

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func TestApplyMigrationsRunsUpSections(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0001_init.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
-- +migrate Down
DROP TABLE things;
`)},
		"0002_more.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
ALTER TABLE things ADD COLUMN color TEXT;
-- +migrate Down
`)},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	sqlDB := openTestDB(t)
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := sqlDB.Exec("INSERT INTO things (name, color) VALUES ('amp', 'black')"); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 2 {
		t.Errorf("recorded migrations = %d, want 2", count)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0001_init.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
CREATE TABLE things (id INTEGER PRIMARY KEY);
-- +migrate Down
DROP TABLE things;
`)},
	}

	sqlDB := openTestDB(t)
	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
			t.Fatalf("apply #%d: %v", i, err)
		}
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	t.Parallel()

	if err := ApplyMigrations(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "CREATE TABLE a (id INTEGER);", "CREATE TABLE a (id INTEGER);"},
		{"up only", "-- +migrate Up\nCREATE TABLE b (id INTEGER);", "\nCREATE TABLE b (id INTEGER);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE c (id INTEGER);\n-- +migrate Down\nDROP TABLE c;", "\nCREATE TABLE c (id INTEGER);\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractUpMigration(tc.content); got != tc.want {
				t.Errorf("extractUpMigration = %q, want %q", got, tc.want)
			}
		})
	}
}
