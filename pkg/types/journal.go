package types

import "time"

// DateTitle is the conventional journal title layout (YYYY-MM-DD). The store
// accepts any title string; the convention matters only to callers that map
// journals onto calendar days.
const DateTitle = "2006-01-02"

// Journal is one day's entry. Title is unique across all journals and is
// never mutated after creation; dependent memos and tasks reference it by
// value, not by key.
type Journal struct {
	JournalKey int64     `json:"journal_key"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}

// Today returns the journal title for the current calendar date.
func Today() string {
	return time.Now().Format(DateTitle)
}
