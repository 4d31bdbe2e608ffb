// Shared helpers for daybook CLI commands.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/slatedeck/daybook/internal/sqlite"
	"github.com/slatedeck/daybook/pkg/daybook"
	"github.com/slatedeck/daybook/pkg/types"
)

// attachStore resolves the data directory, creates the SQLite backend, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewBackend()
	if err := store.Attach(types.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// openSession attaches the store and establishes the active journal: the
// title remembered in config, or today's date when none is stored. The
// journal is created if it does not exist yet. The caller must defer
// store.Detach().
func openSession() (*sqlite.Backend, *daybook.Session, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, err
	}

	active := cfg.GetString(cfgKeyActiveJournal)
	if active == "" {
		active = types.Today()
	}

	session := daybook.NewSession(store)
	if _, err := session.EnsureJournal(active); err != nil {
		store.Detach()
		return nil, nil, fmt.Errorf("ensure journal %q: %w", active, err)
	}
	return store, session, nil
}

// parseKey parses a record key argument.
func parseKey(arg string) (int64, error) {
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || key <= 0 {
		return 0, fmt.Errorf("invalid key %q (expected a positive integer)", arg)
	}
	return key, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
