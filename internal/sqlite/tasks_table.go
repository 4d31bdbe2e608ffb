// Tasks collection accessor. Indexed on journal_title and on the done flag;
// done is constrained to the two indexable values 0 and 1 at write time.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/slatedeck/daybook/pkg/types"
)

var _ types.Collection = (*tasksCollection)(nil)

type tasksCollection struct {
	backend *Backend
}

// Insert persists a task. A zero TaskKey gets the next auto-increment key,
// written back to the record.
func (c *tasksCollection) Insert(record any) (int64, error) {
	task, ok := record.(*types.Task)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if task.Done != types.TaskOpen && task.Done != types.TaskDone {
		return 0, types.ErrInvalidData
	}

	db, release, err := c.backend.write()
	if err != nil {
		return 0, err
	}
	defer release()

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	createdAt := task.CreatedAt.Format(time.RFC3339)

	if task.TaskKey == 0 {
		res, err := db.Exec(
			"INSERT INTO tasks (title, done, journal_title, created_at) VALUES (?, ?, ?, ?)",
			task.Title, task.Done, task.JournalTitle, createdAt)
		if err != nil {
			return 0, fmt.Errorf("inserting task: %w", err)
		}
		key, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading task key: %w", err)
		}
		task.TaskKey = key
		return key, nil
	}

	_, err = db.Exec(
		"INSERT INTO tasks (task_key, title, done, journal_title, created_at) VALUES (?, ?, ?, ?, ?)",
		task.TaskKey, task.Title, task.Done, task.JournalTitle, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: task key %d", types.ErrConstraintViolation, task.TaskKey)
		}
		return 0, fmt.Errorf("inserting task: %w", err)
	}
	return task.TaskKey, nil
}

// Put upserts a task by key; used by the toggle operation.
func (c *tasksCollection) Put(record any) error {
	task, ok := record.(*types.Task)
	if !ok {
		return types.ErrInvalidData
	}
	if task.TaskKey == 0 {
		return types.ErrInvalidKey
	}
	if task.Done != types.TaskOpen && task.Done != types.TaskDone {
		return types.ErrInvalidData
	}

	db, release, err := c.backend.write()
	if err != nil {
		return err
	}
	defer release()

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	_, err = db.Exec(`
		INSERT INTO tasks (task_key, title, done, journal_title, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(task_key) DO UPDATE SET
			title = excluded.title,
			done = excluded.done,
			journal_title = excluded.journal_title,
			created_at = excluded.created_at`,
		task.TaskKey, task.Title, task.Done, task.JournalTitle,
		task.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting task: %w", err)
	}
	return nil
}

// Get retrieves a task by key.
func (c *tasksCollection) Get(key int64) (any, error) {
	db, release, err := c.backend.read()
	if err != nil {
		return nil, err
	}
	defer release()

	row := db.QueryRow(
		"SELECT task_key, title, done, journal_title, created_at FROM tasks WHERE task_key = ?", key)
	task, err := hydrateTask(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", key, err)
	}
	return task, nil
}

// Delete removes a task by key. A missing key is not an error.
func (c *tasksCollection) Delete(key int64) error {
	db, release, err := c.backend.write()
	if err != nil {
		return err
	}
	defer release()

	if _, err := db.Exec("DELETE FROM tasks WHERE task_key = ?", key); err != nil {
		return fmt.Errorf("deleting task %d: %w", key, err)
	}
	return nil
}

// FetchAll returns every task in key order.
func (c *tasksCollection) FetchAll() ([]any, error) {
	return c.fetch("SELECT task_key, title, done, journal_title, created_at FROM tasks ORDER BY task_key")
}

// FetchByIndex returns tasks whose indexed column equals value.
func (c *tasksCollection) FetchByIndex(index string, value any) ([]any, error) {
	spec, _ := types.SpecFor(types.TasksCollection)
	idx, ok := spec.Index(index)
	if !ok {
		return nil, types.ErrIndexNotFound
	}
	return c.fetch(fmt.Sprintf(
		"SELECT task_key, title, done, journal_title, created_at FROM tasks WHERE %s = ? ORDER BY task_key",
		idx.Column), value)
}

func (c *tasksCollection) fetch(query string, args ...any) ([]any, error) {
	db, release, err := c.backend.read()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		task, err := hydrateTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		results = append(results, task)
	}
	return results, rows.Err()
}

func hydrateTask(row rowScanner) (*types.Task, error) {
	var task types.Task
	var createdAt string
	if err := row.Scan(&task.TaskKey, &task.Title, &task.Done, &task.JournalTitle, &createdAt); err != nil {
		return nil, err
	}
	var err error
	task.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	return &task, nil
}
