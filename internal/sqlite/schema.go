// Package sqlite implements the SQLite storage engine for daybook: one
// database file holding the three collections, their secondary indexes, and
// a meta table stamping the schema version.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slatedeck/daybook/pkg/types"
)

// schemaVersion is stamped into meta when the database is created. Attach
// refuses databases stamped with any other version; per-version migration
// steps slot into migrate if the schema ever changes.
const schemaVersion = 1

const createMeta = `CREATE TABLE meta (
    schema_version INTEGER NOT NULL,
    database_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// collectionBody holds the non-key column DDL for each collection. The key
// column and the indexes are rendered from the registry. journal_title
// carries no FOREIGN KEY on purpose: referential integrity is maintained by
// the cascade delete, not by the database.
var collectionBody = map[string]string{
	types.JournalsCollection: `title TEXT NOT NULL,
    created_at TEXT NOT NULL`,

	types.MemosCollection: `text TEXT NOT NULL,
    journal_title TEXT NOT NULL,
    created_at TEXT NOT NULL`,

	types.TasksCollection: `title TEXT NOT NULL,
    done INTEGER NOT NULL DEFAULT 0,
    journal_title TEXT NOT NULL,
    created_at TEXT NOT NULL`,
}

// createTableSQL renders the CREATE TABLE statement for a registry entry.
// AUTOINCREMENT keeps assigned keys strictly increasing even after deletes.
func createTableSQL(spec types.CollectionSpec) string {
	key := spec.KeyColumn + " INTEGER PRIMARY KEY"
	if spec.AutoIncrement {
		key += " AUTOINCREMENT"
	}
	return fmt.Sprintf("CREATE TABLE %s (\n    %s,\n    %s\n);", spec.Name, key, collectionBody[spec.Name])
}

// createIndexSQL renders the CREATE INDEX statements for a registry entry.
func createIndexSQL(spec types.CollectionSpec) []string {
	stmts := make([]string, 0, len(spec.Indexes))
	for _, idx := range spec.Indexes {
		kind := "INDEX"
		if idx.Unique {
			kind = "UNIQUE INDEX"
		}
		stmts = append(stmts, fmt.Sprintf("CREATE %s idx_%s_%s ON %s(%s);",
			kind, spec.Name, idx.Name, spec.Name, idx.Column))
	}
	return stmts
}

// initSchema creates the schema on a fresh database or verifies the stamped
// version on an existing one. Creation runs exactly once per database file.
func initSchema(db *sql.DB) error {
	var version int
	err := db.QueryRow("SELECT schema_version FROM meta").Scan(&version)
	if err == nil {
		return migrate(db, version)
	}
	if !isMissingTable(err) {
		return fmt.Errorf("reading schema version: %w", err)
	}
	return createSchema(db)
}

func createSchema(db *sql.DB) error {
	if _, err := db.Exec(createMeta); err != nil {
		return fmt.Errorf("creating meta: %w", err)
	}
	for _, spec := range types.Registry {
		if _, err := db.Exec(createTableSQL(spec)); err != nil {
			return fmt.Errorf("creating %s: %w", spec.Name, err)
		}
		for _, stmt := range createIndexSQL(spec) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("indexing %s: %w", spec.Name, err)
			}
		}
	}
	_, err := db.Exec(
		"INSERT INTO meta (schema_version, database_id, created_at) VALUES (?, ?, ?)",
		schemaVersion, newDatabaseID(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("stamping meta: %w", err)
	}
	return nil
}

// migrate is the per-version upgrade hook. Version 1 is current, so the only
// populated path is the no-op.
func migrate(db *sql.DB, from int) error {
	if from == schemaVersion {
		return nil
	}
	return fmt.Errorf("%w: database at version %d, supported version %d",
		types.ErrSchemaVersion, from, schemaVersion)
}

// newDatabaseID generates a UUID v7 identifying the database instance.
func newDatabaseID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
