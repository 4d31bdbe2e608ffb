package types

// Collection names for Store.GetCollection.
const (
	JournalsCollection = "journals"
	MemosCollection    = "memos"
	TasksCollection    = "tasks"
)

// CollectionNames lists all collection names for enumeration.
var CollectionNames = []string{
	JournalsCollection,
	MemosCollection,
	TasksCollection,
}

// Index names declared in the registry, for Collection.FetchByIndex.
const (
	IndexTitle        = "title"         // journals, unique
	IndexJournalTitle = "journal_title" // memos and tasks, non-unique
	IndexDone         = "done"          // tasks, non-unique
)

// IndexSpec describes one secondary index on a collection.
type IndexSpec struct {
	Name   string // index name used by FetchByIndex
	Column string // indexed column
	Unique bool   // rejects writes introducing a duplicate value
}

// CollectionSpec describes one collection: its key column, auto-increment
// policy, and secondary indexes.
type CollectionSpec struct {
	Name          string
	KeyColumn     string
	AutoIncrement bool
	Indexes       []IndexSpec
}

// Registry is the static schema for the three collections. It is consumed
// only during schema creation at Attach and is never mutated at runtime.
var Registry = []CollectionSpec{
	{
		Name:          JournalsCollection,
		KeyColumn:     "journal_key",
		AutoIncrement: true,
		Indexes: []IndexSpec{
			{Name: IndexTitle, Column: "title", Unique: true},
		},
	},
	{
		Name:          MemosCollection,
		KeyColumn:     "memo_key",
		AutoIncrement: true,
		Indexes: []IndexSpec{
			{Name: IndexJournalTitle, Column: "journal_title"},
		},
	},
	{
		Name:          TasksCollection,
		KeyColumn:     "task_key",
		AutoIncrement: true,
		Indexes: []IndexSpec{
			{Name: IndexJournalTitle, Column: "journal_title"},
			{Name: IndexDone, Column: "done"},
		},
	},
}

// SpecFor returns the registry entry for the given collection name.
func SpecFor(name string) (CollectionSpec, bool) {
	for _, spec := range Registry {
		if spec.Name == name {
			return spec, true
		}
	}
	return CollectionSpec{}, false
}

// Index returns the named index declared on the collection.
func (s CollectionSpec) Index(name string) (IndexSpec, bool) {
	for _, idx := range s.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return IndexSpec{}, false
}
