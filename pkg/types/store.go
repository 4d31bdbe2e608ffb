// Package types defines the Store and Collection interfaces, the collection
// schema registry, record types, and standard errors for the daybook
// persistence layer.
package types

import "errors"

// Config holds parameters for Store.Attach.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Store is the storage engine handle. Callers attach once per process,
// access collections by name, and detach when done.
type Store interface {
	// GetCollection returns the Collection for the given name.
	// Returns ErrCollectionNotFound if the name is not in the registry.
	GetCollection(name string) (Collection, error)

	// Attach opens the database described by config, creating it and its
	// schema on first use. Idempotent across processes: attaching to an
	// existing database must not re-run creation. Returns
	// ErrStorageUnavailable when no usable persistent storage exists, and
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases storage resources. Idempotent: multiple calls succeed.
	// After Detach, collection operations return ErrStoreDetached.
	Detach() error
}

// Collection provides record operations for a single named collection.
// Reads return any; callers type-assert to the concrete record struct
// (*Journal, *Memo, *Task). Each operation is atomic with respect to the one
// collection and record it touches; no operation spans collections.
type Collection interface {
	// Insert persists a new record. When the record's key field is zero a
	// strictly increasing integer key is assigned; the key is written back
	// to the record and returned. Returns ErrConstraintViolation when a
	// unique index already holds one of the record's indexed values.
	Insert(record any) (int64, error)

	// Put upserts a full record by its key field (overwrite semantics).
	// Returns ErrConstraintViolation under the same rule as Insert when the
	// write would duplicate a unique index value across two keys.
	Put(record any) error

	// Get retrieves the record with the given key.
	// Returns ErrNotFound if no record exists with that key.
	Get(key int64) (any, error)

	// Delete removes exactly one record. A missing key is not an error.
	Delete(key int64) error

	// FetchAll returns every record in the collection in key order.
	FetchAll() ([]any, error)

	// FetchByIndex returns all records whose indexed field equals value.
	// Equality lookup only. Returns ErrIndexNotFound for an undeclared index
	// name, and an empty slice (never nil) when nothing matches.
	FetchByIndex(index string, value any) ([]any, error)
}

// Store lifecycle errors.
var (
	ErrStorageUnavailable = errors.New("persistent storage unavailable")
	ErrStoreDetached      = errors.New("store is detached")
	ErrAlreadyAttached    = errors.New("store is already attached")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrSchemaVersion      = errors.New("unsupported schema version")
)

// Record operation errors. Any other error from a collection operation is a
// device failure: it wraps the driver error and propagates to the caller.
var (
	ErrConstraintViolation = errors.New("unique index constraint violated")
	ErrNotFound            = errors.New("record not found")
	ErrIndexNotFound       = errors.New("index not found")
	ErrInvalidData         = errors.New("invalid record data")
	ErrInvalidKey          = errors.New("invalid record key")
	ErrEmptyText           = errors.New("text must not be empty")
)
