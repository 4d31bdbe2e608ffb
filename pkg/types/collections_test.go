package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCollections(t *testing.T) {
	assert.Len(t, Registry, 3)

	for _, name := range CollectionNames {
		spec, ok := SpecFor(name)
		require.True(t, ok, "missing registry entry for %s", name)
		assert.Equal(t, name, spec.Name)
		assert.NotEmpty(t, spec.KeyColumn)
		assert.True(t, spec.AutoIncrement)
	}
}

func TestRegistryJournalTitleUnique(t *testing.T) {
	spec, ok := SpecFor(JournalsCollection)
	require.True(t, ok)

	idx, ok := spec.Index(IndexTitle)
	require.True(t, ok)
	assert.True(t, idx.Unique)
	assert.Equal(t, "title", idx.Column)
}

func TestRegistryDependentIndexes(t *testing.T) {
	for _, name := range []string{MemosCollection, TasksCollection} {
		spec, ok := SpecFor(name)
		require.True(t, ok)

		idx, ok := spec.Index(IndexJournalTitle)
		require.True(t, ok, "%s must index journal_title", name)
		assert.False(t, idx.Unique)
	}

	tasks, _ := SpecFor(TasksCollection)
	done, ok := tasks.Index(IndexDone)
	require.True(t, ok)
	assert.False(t, done.Unique)
}

func TestSpecForUnknown(t *testing.T) {
	_, ok := SpecFor("folders")
	assert.False(t, ok)
}
