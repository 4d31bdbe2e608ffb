// Unit tests for the memos collection and its journal_title index.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedeck/daybook/pkg/types"
)

func memos(t *testing.T, b *Backend) types.Collection {
	t.Helper()
	coll, err := b.GetCollection(types.MemosCollection)
	require.NoError(t, err)
	return coll
}

func TestMemosInsertAndGet(t *testing.T) {
	b := setupBackend(t)
	coll := memos(t, b)

	memo := &types.Memo{Text: "buy coffee", JournalTitle: "2026-04-01"}
	key, err := coll.Insert(memo)
	require.NoError(t, err)
	assert.Equal(t, int64(1), key)

	record, err := coll.Get(key)
	require.NoError(t, err)
	got := record.(*types.Memo)
	assert.Equal(t, "buy coffee", got.Text)
	assert.Equal(t, "2026-04-01", got.JournalTitle)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemosFetchByJournalTitle(t *testing.T) {
	b := setupBackend(t)
	coll := memos(t, b)

	for _, m := range []*types.Memo{
		{Text: "one", JournalTitle: "2026-04-01"},
		{Text: "two", JournalTitle: "2026-04-01"},
		{Text: "other day", JournalTitle: "2026-04-02"},
	} {
		_, err := coll.Insert(m)
		require.NoError(t, err)
	}

	results, err := coll.FetchByIndex(types.IndexJournalTitle, "2026-04-01")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "one", results[0].(*types.Memo).Text)
	assert.Equal(t, "two", results[1].(*types.Memo).Text)

	// A journal with no memos yields an empty, non-nil slice.
	results, err = coll.FetchByIndex(types.IndexJournalTitle, "2026-12-31")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestMemosEditRoundTrip(t *testing.T) {
	b := setupBackend(t)
	coll := memos(t, b)

	key, err := coll.Insert(&types.Memo{Text: "draft", JournalTitle: "2026-04-01"})
	require.NoError(t, err)

	record, err := coll.Get(key)
	require.NoError(t, err)
	memo := record.(*types.Memo)
	memo.Text = "final"
	require.NoError(t, coll.Put(memo))

	record, err = coll.Get(key)
	require.NoError(t, err)
	got := record.(*types.Memo)
	assert.Equal(t, "final", got.Text)
	assert.Equal(t, "2026-04-01", got.JournalTitle)
}

func TestMemosDelete(t *testing.T) {
	b := setupBackend(t)
	coll := memos(t, b)

	key, err := coll.Insert(&types.Memo{Text: "gone soon", JournalTitle: "2026-04-01"})
	require.NoError(t, err)

	require.NoError(t, coll.Delete(key))
	_, err = coll.Get(key)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, coll.Delete(key))
}

func TestMemosUnknownIndex(t *testing.T) {
	b := setupBackend(t)
	coll := memos(t, b)

	_, err := coll.FetchByIndex(types.IndexDone, 1)
	assert.ErrorIs(t, err, types.ErrIndexNotFound)
}
