// Tests for the SQLite backend lifecycle.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/slatedeck/daybook/pkg/types"
)

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{DataDir: tmpDir}

	err := b.Attach(config)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Verify database file created
	dbPath := filepath.Join(tmpDir, databaseFile)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", databaseFile)
	}

	// Verify double attach fails
	err = b.Attach(config)
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	b.Detach()
}

func TestBackend_AttachUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks do not apply")
	}
	tmpDir := t.TempDir()
	if err := os.Chmod(tmpDir, 0o500); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	t.Cleanup(func() { os.Chmod(tmpDir, 0o700) })

	b := NewBackend()
	err := b.Attach(types.Config{DataDir: filepath.Join(tmpDir, "nested")})
	if !errors.Is(err, types.ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	b.Attach(types.Config{DataDir: tmpDir})

	err := b.Detach()
	if err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	err = b.Detach()
	if err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	_, err = b.GetCollection(types.JournalsCollection)
	if err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
}

func TestBackend_GetCollection(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	b.Attach(types.Config{DataDir: tmpDir})
	defer b.Detach()

	for _, name := range types.CollectionNames {
		coll, err := b.GetCollection(name)
		if err != nil {
			t.Errorf("GetCollection(%s) failed: %v", name, err)
		}
		if coll == nil {
			t.Errorf("GetCollection(%s) returned nil", name)
		}
	}

	_, err := b.GetCollection("nonexistent")
	if err != types.ErrCollectionNotFound {
		t.Errorf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestBackend_OperationsAfterDetach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	b.Attach(types.Config{DataDir: tmpDir})

	coll, err := b.GetCollection(types.JournalsCollection)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	b.Detach()

	if _, err := coll.Insert(&types.Journal{Title: "2026-01-01"}); err != types.ErrStoreDetached {
		t.Errorf("Insert after detach: expected ErrStoreDetached, got %v", err)
	}
	if _, err := coll.FetchAll(); err != types.ErrStoreDetached {
		t.Errorf("FetchAll after detach: expected ErrStoreDetached, got %v", err)
	}
	if err := coll.Delete(1); err != types.ErrStoreDetached {
		t.Errorf("Delete after detach: expected ErrStoreDetached, got %v", err)
	}
}
