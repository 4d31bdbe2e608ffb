package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/slatedeck/daybook/pkg/types"
)

// databaseFile is the database filename inside the data directory.
const databaseFile = "daybook.db"

// Backend implements types.Store on a single SQLite database file.
// One logical writer is assumed; the mutex serializes writes against reads
// within the process, nothing coordinates across processes.
type Backend struct {
	mu          sync.RWMutex
	attached    bool
	config      types.Config
	db          *sql.DB
	collections map[string]types.Collection
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates an unattached backend; call Attach before use.
func NewBackend() *Backend {
	return &Backend{
		collections: make(map[string]types.Collection),
	}
}

// Attach opens or creates the database under config.DataDir and prepares the
// collection accessors. The schema is created only when the database file is
// new; an existing database has its stamped version verified instead.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true

	b.collections[types.JournalsCollection] = &journalsCollection{backend: b}
	b.collections[types.MemosCollection] = &memosCollection{backend: b}
	b.collections[types.TasksCollection] = &tasksCollection{backend: b}

	return nil
}

// Detach closes the database. Idempotent; afterwards collection operations
// return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.collections = make(map[string]types.Collection)

	return nil
}

// GetCollection returns the accessor for the named collection.
func (b *Backend) GetCollection(name string) (types.Collection, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	coll, ok := b.collections[name]
	if !ok {
		return nil, types.ErrCollectionNotFound
	}
	return coll, nil
}

// write locks the backend for a single write operation. The returned release
// function must be deferred by the caller.
func (b *Backend) write() (*sql.DB, func(), error) {
	b.mu.Lock()
	if !b.attached {
		b.mu.Unlock()
		return nil, nil, types.ErrStoreDetached
	}
	return b.db, b.mu.Unlock, nil
}

// read locks the backend for a single read operation.
func (b *Backend) read() (*sql.DB, func(), error) {
	b.mu.RLock()
	if !b.attached {
		b.mu.RUnlock()
		return nil, nil, types.ErrStoreDetached
	}
	return b.db, b.mu.RUnlock, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows, so each hydrate
// helper works for single- and multi-row reads.
type rowScanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation reports whether err is a SQLite unique-index failure,
// the one storage error callers are expected to recover from.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
