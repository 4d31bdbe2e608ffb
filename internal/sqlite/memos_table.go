// Memos collection accessor. journal_title carries a non-unique index so the
// UI can fetch all memos for one journal in a single equality lookup.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/slatedeck/daybook/pkg/types"
)

var _ types.Collection = (*memosCollection)(nil)

type memosCollection struct {
	backend *Backend
}

// Insert persists a memo. A zero MemoKey gets the next auto-increment key,
// written back to the record. No referential check is made against journals.
func (c *memosCollection) Insert(record any) (int64, error) {
	m, ok := record.(*types.Memo)
	if !ok {
		return 0, types.ErrInvalidData
	}

	db, release, err := c.backend.write()
	if err != nil {
		return 0, err
	}
	defer release()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	createdAt := m.CreatedAt.Format(time.RFC3339)

	if m.MemoKey == 0 {
		res, err := db.Exec(
			"INSERT INTO memos (text, journal_title, created_at) VALUES (?, ?, ?)",
			m.Text, m.JournalTitle, createdAt)
		if err != nil {
			return 0, fmt.Errorf("inserting memo: %w", err)
		}
		key, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading memo key: %w", err)
		}
		m.MemoKey = key
		return key, nil
	}

	_, err = db.Exec(
		"INSERT INTO memos (memo_key, text, journal_title, created_at) VALUES (?, ?, ?, ?)",
		m.MemoKey, m.Text, m.JournalTitle, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: memo key %d", types.ErrConstraintViolation, m.MemoKey)
		}
		return 0, fmt.Errorf("inserting memo: %w", err)
	}
	return m.MemoKey, nil
}

// Put upserts a memo by key; used by the edit operation.
func (c *memosCollection) Put(record any) error {
	m, ok := record.(*types.Memo)
	if !ok {
		return types.ErrInvalidData
	}
	if m.MemoKey == 0 {
		return types.ErrInvalidKey
	}

	db, release, err := c.backend.write()
	if err != nil {
		return err
	}
	defer release()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err = db.Exec(`
		INSERT INTO memos (memo_key, text, journal_title, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(memo_key) DO UPDATE SET
			text = excluded.text,
			journal_title = excluded.journal_title,
			created_at = excluded.created_at`,
		m.MemoKey, m.Text, m.JournalTitle, m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting memo: %w", err)
	}
	return nil
}

// Get retrieves a memo by key.
func (c *memosCollection) Get(key int64) (any, error) {
	db, release, err := c.backend.read()
	if err != nil {
		return nil, err
	}
	defer release()

	row := db.QueryRow(
		"SELECT memo_key, text, journal_title, created_at FROM memos WHERE memo_key = ?", key)
	m, err := hydrateMemo(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting memo %d: %w", key, err)
	}
	return m, nil
}

// Delete removes a memo by key. A missing key is not an error.
func (c *memosCollection) Delete(key int64) error {
	db, release, err := c.backend.write()
	if err != nil {
		return err
	}
	defer release()

	if _, err := db.Exec("DELETE FROM memos WHERE memo_key = ?", key); err != nil {
		return fmt.Errorf("deleting memo %d: %w", key, err)
	}
	return nil
}

// FetchAll returns every memo in key order.
func (c *memosCollection) FetchAll() ([]any, error) {
	return c.fetch("SELECT memo_key, text, journal_title, created_at FROM memos ORDER BY memo_key")
}

// FetchByIndex returns memos whose indexed column equals value.
func (c *memosCollection) FetchByIndex(index string, value any) ([]any, error) {
	spec, _ := types.SpecFor(types.MemosCollection)
	idx, ok := spec.Index(index)
	if !ok {
		return nil, types.ErrIndexNotFound
	}
	return c.fetch(fmt.Sprintf(
		"SELECT memo_key, text, journal_title, created_at FROM memos WHERE %s = ? ORDER BY memo_key",
		idx.Column), value)
}

func (c *memosCollection) fetch(query string, args ...any) ([]any, error) {
	db, release, err := c.backend.read()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching memos: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		m, err := hydrateMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning memo: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

func hydrateMemo(row rowScanner) (*types.Memo, error) {
	var m types.Memo
	var createdAt string
	if err := row.Scan(&m.MemoKey, &m.Text, &m.JournalTitle, &createdAt); err != nil {
		return nil, err
	}
	var err error
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing memo created_at: %w", err)
	}
	return &m, nil
}
