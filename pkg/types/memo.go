package types

import "time"

// Memo is a free-form note attached to a journal by title. JournalTitle is a
// non-enforced reference: the store performs no referential check on write;
// integrity is maintained procedurally by the journal cascade delete.
type Memo struct {
	MemoKey      int64     `json:"memo_key"`
	Text         string    `json:"text"`
	JournalTitle string    `json:"journal_title"`
	CreatedAt    time.Time `json:"created_at"`
}
