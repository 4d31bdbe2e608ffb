// Journals collection accessor. Title carries a unique index; a duplicate
// title surfaces as ErrConstraintViolation, which callers treat as a normal
// "journal already exists" outcome.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/slatedeck/daybook/pkg/types"
)

var _ types.Collection = (*journalsCollection)(nil)

type journalsCollection struct {
	backend *Backend
}

// Insert persists a journal. A zero JournalKey gets the next auto-increment
// key, written back to the record.
func (c *journalsCollection) Insert(record any) (int64, error) {
	j, ok := record.(*types.Journal)
	if !ok {
		return 0, types.ErrInvalidData
	}

	db, release, err := c.backend.write()
	if err != nil {
		return 0, err
	}
	defer release()

	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	createdAt := j.CreatedAt.Format(time.RFC3339)

	if j.JournalKey == 0 {
		res, err := db.Exec(
			"INSERT INTO journals (title, created_at) VALUES (?, ?)",
			j.Title, createdAt)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("%w: journal title %q", types.ErrConstraintViolation, j.Title)
			}
			return 0, fmt.Errorf("inserting journal: %w", err)
		}
		key, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading journal key: %w", err)
		}
		j.JournalKey = key
		return key, nil
	}

	_, err = db.Exec(
		"INSERT INTO journals (journal_key, title, created_at) VALUES (?, ?, ?)",
		j.JournalKey, j.Title, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: journal title %q", types.ErrConstraintViolation, j.Title)
		}
		return 0, fmt.Errorf("inserting journal: %w", err)
	}
	return j.JournalKey, nil
}

// Put upserts a journal by key.
func (c *journalsCollection) Put(record any) error {
	j, ok := record.(*types.Journal)
	if !ok {
		return types.ErrInvalidData
	}
	if j.JournalKey == 0 {
		return types.ErrInvalidKey
	}

	db, release, err := c.backend.write()
	if err != nil {
		return err
	}
	defer release()

	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}

	_, err = db.Exec(`
		INSERT INTO journals (journal_key, title, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(journal_key) DO UPDATE SET
			title = excluded.title,
			created_at = excluded.created_at`,
		j.JournalKey, j.Title, j.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: journal title %q", types.ErrConstraintViolation, j.Title)
		}
		return fmt.Errorf("upserting journal: %w", err)
	}
	return nil
}

// Get retrieves a journal by key.
func (c *journalsCollection) Get(key int64) (any, error) {
	db, release, err := c.backend.read()
	if err != nil {
		return nil, err
	}
	defer release()

	row := db.QueryRow(
		"SELECT journal_key, title, created_at FROM journals WHERE journal_key = ?", key)
	j, err := hydrateJournal(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting journal %d: %w", key, err)
	}
	return j, nil
}

// Delete removes a journal by key. A missing key is not an error.
func (c *journalsCollection) Delete(key int64) error {
	db, release, err := c.backend.write()
	if err != nil {
		return err
	}
	defer release()

	if _, err := db.Exec("DELETE FROM journals WHERE journal_key = ?", key); err != nil {
		return fmt.Errorf("deleting journal %d: %w", key, err)
	}
	return nil
}

// FetchAll returns every journal in key order.
func (c *journalsCollection) FetchAll() ([]any, error) {
	return c.fetch("SELECT journal_key, title, created_at FROM journals ORDER BY journal_key")
}

// FetchByIndex returns journals whose indexed column equals value.
func (c *journalsCollection) FetchByIndex(index string, value any) ([]any, error) {
	spec, _ := types.SpecFor(types.JournalsCollection)
	idx, ok := spec.Index(index)
	if !ok {
		return nil, types.ErrIndexNotFound
	}
	return c.fetch(fmt.Sprintf(
		"SELECT journal_key, title, created_at FROM journals WHERE %s = ? ORDER BY journal_key",
		idx.Column), value)
}

func (c *journalsCollection) fetch(query string, args ...any) ([]any, error) {
	db, release, err := c.backend.read()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching journals: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		j, err := hydrateJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal: %w", err)
		}
		results = append(results, j)
	}
	return results, rows.Err()
}

func hydrateJournal(row rowScanner) (*types.Journal, error) {
	var j types.Journal
	var createdAt string
	if err := row.Scan(&j.JournalKey, &j.Title, &createdAt); err != nil {
		return nil, err
	}
	var err error
	j.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing journal created_at: %w", err)
	}
	return &j, nil
}
