// Package daybook provides the journal lifecycle and per-entity operations
// on top of the storage engine. A Session owns the active journal title;
// callers create one per logical user and thread it through their calls
// instead of relying on process-wide state.
package daybook

import (
	"errors"
	"fmt"

	"github.com/slatedeck/daybook/pkg/types"
)

// Session scopes memo and task operations to an active journal.
type Session struct {
	store  types.Store
	active string
}

// NewSession returns a Session over an attached store. The active journal
// starts empty; EnsureJournal or SwitchJournal establishes it.
func NewSession(store types.Store) *Session {
	return &Session{store: store}
}

// ActiveJournal returns the title the session's entity operations are
// scoped to.
func (s *Session) ActiveJournal() string {
	return s.active
}

// SwitchJournal sets the active journal without touching storage. No
// existence check is made; callers pass titles obtained from a prior fetch.
func (s *Session) SwitchJournal(title string) {
	s.active = title
}

// EnsureResult reports the outcome of EnsureJournal: the journal now in
// place and whether this call created it.
type EnsureResult struct {
	Journal *types.Journal
	Created bool
}

// EnsureJournal makes sure a journal with the given title exists and
// establishes it as the active journal. A duplicate title is a normal
// outcome, reported as Created=false rather than an error; any other
// storage failure propagates.
func (s *Session) EnsureJournal(title string) (EnsureResult, error) {
	journals, err := s.store.GetCollection(types.JournalsCollection)
	if err != nil {
		return EnsureResult{}, err
	}

	j := &types.Journal{Title: title}
	_, err = journals.Insert(j)
	switch {
	case err == nil:
		s.active = title
		return EnsureResult{Journal: j, Created: true}, nil
	case errors.Is(err, types.ErrConstraintViolation):
		existing, err := s.journalByTitle(journals, title)
		if err != nil {
			return EnsureResult{}, err
		}
		s.active = title
		return EnsureResult{Journal: existing, Created: false}, nil
	default:
		return EnsureResult{}, err
	}
}

// Journals returns every journal record.
func (s *Session) Journals() ([]*types.Journal, error) {
	journals, err := s.store.GetCollection(types.JournalsCollection)
	if err != nil {
		return nil, err
	}
	records, err := journals.FetchAll()
	if err != nil {
		return nil, err
	}
	result := make([]*types.Journal, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.(*types.Journal))
	}
	return result, nil
}

// DeleteJournalCascade removes the journal with the given title together
// with its dependent memos and tasks, then re-ensures today's journal as the
// active one. A title with no journal record is a no-op.
//
// The deletes run as independent single-collection operations; a storage
// failure partway leaves partially deleted state, which is not rolled back.
func (s *Session) DeleteJournalCascade(title string) error {
	journals, err := s.store.GetCollection(types.JournalsCollection)
	if err != nil {
		return err
	}
	memos, err := s.store.GetCollection(types.MemosCollection)
	if err != nil {
		return err
	}
	tasks, err := s.store.GetCollection(types.TasksCollection)
	if err != nil {
		return err
	}

	found, err := s.journalByTitle(journals, title)
	if errors.Is(err, types.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	depMemos, err := memos.FetchByIndex(types.IndexJournalTitle, title)
	if err != nil {
		return err
	}
	depTasks, err := tasks.FetchByIndex(types.IndexJournalTitle, title)
	if err != nil {
		return err
	}

	for _, rec := range depMemos {
		m := rec.(*types.Memo)
		if err := memos.Delete(m.MemoKey); err != nil {
			return fmt.Errorf("deleting memo %d: %w", m.MemoKey, err)
		}
	}
	for _, rec := range depTasks {
		task := rec.(*types.Task)
		if err := tasks.Delete(task.TaskKey); err != nil {
			return fmt.Errorf("deleting task %d: %w", task.TaskKey, err)
		}
	}
	if err := journals.Delete(found.JournalKey); err != nil {
		return fmt.Errorf("deleting journal %d: %w", found.JournalKey, err)
	}

	_, err = s.EnsureJournal(types.Today())
	return err
}

// AddMemo inserts a memo under the active journal.
func (s *Session) AddMemo(text string) (*types.Memo, error) {
	memos, err := s.store.GetCollection(types.MemosCollection)
	if err != nil {
		return nil, err
	}
	m := &types.Memo{Text: text, JournalTitle: s.active}
	if _, err := memos.Insert(m); err != nil {
		return nil, err
	}
	return m, nil
}

// EditMemo replaces a memo's text. Empty replacement text is rejected here,
// before any storage call, leaving the stored record unchanged.
func (s *Session) EditMemo(key int64, text string) error {
	if text == "" {
		return types.ErrEmptyText
	}
	memos, err := s.store.GetCollection(types.MemosCollection)
	if err != nil {
		return err
	}
	rec, err := memos.Get(key)
	if err != nil {
		return err
	}
	m := rec.(*types.Memo)
	m.Text = text
	return memos.Put(m)
}

// DeleteMemo removes a memo by key.
func (s *Session) DeleteMemo(key int64) error {
	memos, err := s.store.GetCollection(types.MemosCollection)
	if err != nil {
		return err
	}
	return memos.Delete(key)
}

// Memos returns the memos of the active journal.
func (s *Session) Memos() ([]*types.Memo, error) {
	memos, err := s.store.GetCollection(types.MemosCollection)
	if err != nil {
		return nil, err
	}
	records, err := memos.FetchByIndex(types.IndexJournalTitle, s.active)
	if err != nil {
		return nil, err
	}
	result := make([]*types.Memo, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.(*types.Memo))
	}
	return result, nil
}

// AddTask inserts an open task under the active journal.
func (s *Session) AddTask(title string) (*types.Task, error) {
	tasks, err := s.store.GetCollection(types.TasksCollection)
	if err != nil {
		return nil, err
	}
	task := &types.Task{Title: title, Done: types.TaskOpen, JournalTitle: s.active}
	if _, err := tasks.Insert(task); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleTask flips a task's done flag and writes the record back.
func (s *Session) ToggleTask(key int64) (*types.Task, error) {
	tasks, err := s.store.GetCollection(types.TasksCollection)
	if err != nil {
		return nil, err
	}
	rec, err := tasks.Get(key)
	if err != nil {
		return nil, err
	}
	task := rec.(*types.Task)
	task.Toggle()
	if err := tasks.Put(task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task by key.
func (s *Session) DeleteTask(key int64) error {
	tasks, err := s.store.GetCollection(types.TasksCollection)
	if err != nil {
		return err
	}
	return tasks.Delete(key)
}

// Tasks returns the tasks of the active journal.
func (s *Session) Tasks() ([]*types.Task, error) {
	tasks, err := s.store.GetCollection(types.TasksCollection)
	if err != nil {
		return nil, err
	}
	records, err := tasks.FetchByIndex(types.IndexJournalTitle, s.active)
	if err != nil {
		return nil, err
	}
	result := make([]*types.Task, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.(*types.Task))
	}
	return result, nil
}

func (s *Session) journalByTitle(journals types.Collection, title string) (*types.Journal, error) {
	records, err := journals.FetchByIndex(types.IndexTitle, title)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, types.ErrNotFound
	}
	return records[0].(*types.Journal), nil
}
