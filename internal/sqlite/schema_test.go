// Tests for schema creation, reopen, and version checking.
package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slatedeck/daybook/pkg/types"
)

func TestSchemaPersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{DataDir: tmpDir}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("first Attach failed: %v", err)
	}

	coll, err := b.GetCollection(types.JournalsCollection)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	key, err := coll.Insert(&types.Journal{Title: "2026-03-01"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Second attach must reuse the existing schema, not recreate it.
	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer b2.Detach()

	coll, err = b2.GetCollection(types.JournalsCollection)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	record, err := coll.Get(key)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if record.(*types.Journal).Title != "2026-03-01" {
		t.Errorf("journal not preserved across reopen, got %+v", record)
	}
}

func TestSchemaVersionStamped(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(types.Config{DataDir: tmpDir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	b.Detach()

	db, err := sql.Open("sqlite", filepath.Join(tmpDir, databaseFile))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	var version int
	var databaseID string
	err = db.QueryRow("SELECT schema_version, database_id FROM meta").Scan(&version, &databaseID)
	if err != nil {
		t.Fatalf("reading meta failed: %v", err)
	}
	if version != schemaVersion {
		t.Errorf("expected schema_version %d, got %d", schemaVersion, version)
	}
	if databaseID == "" {
		t.Error("database_id is empty")
	}
}

func TestSchemaVersionMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{DataDir: tmpDir}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	b.Detach()

	// Stamp a future version directly, then attach again.
	db, err := sql.Open("sqlite", filepath.Join(tmpDir, databaseFile))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := db.Exec("UPDATE meta SET schema_version = ?", schemaVersion+1); err != nil {
		t.Fatalf("updating version failed: %v", err)
	}
	db.Close()

	b2 := NewBackend()
	err = b2.Attach(config)
	if !errors.Is(err, types.ErrSchemaVersion) {
		t.Errorf("expected ErrSchemaVersion, got %v", err)
	}
}

func TestCreateTableSQL(t *testing.T) {
	spec, ok := types.SpecFor(types.JournalsCollection)
	if !ok {
		t.Fatal("journals spec missing")
	}
	ddl := createTableSQL(spec)
	if want := "journal_key INTEGER PRIMARY KEY AUTOINCREMENT"; !strings.Contains(ddl, want) {
		t.Errorf("DDL missing %q:\n%s", want, ddl)
	}

	stmts := createIndexSQL(spec)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 index statement, got %d", len(stmts))
	}
	if want := "CREATE UNIQUE INDEX idx_journals_title"; !strings.Contains(stmts[0], want) {
		t.Errorf("index DDL missing %q:\n%s", want, stmts[0])
	}
}
