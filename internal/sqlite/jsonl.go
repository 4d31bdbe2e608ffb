// JSONL export: each collection dumped to one line-delimited JSON file using
// the temp-file, fsync, rename pattern so a crash never leaves a torn file.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slatedeck/daybook/pkg/types"
)

// ExportJSONL writes journals.jsonl, memos.jsonl, and tasks.jsonl into dir.
// Records appear in key order. Each file is written atomically, but the
// export as a whole is not: a failure partway leaves earlier files updated.
func (b *Backend) ExportJSONL(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	for _, name := range types.CollectionNames {
		coll, err := b.GetCollection(name)
		if err != nil {
			return err
		}
		records, err := coll.FetchAll()
		if err != nil {
			return fmt.Errorf("exporting %s: %w", name, err)
		}

		lines := make([]json.RawMessage, 0, len(records))
		for _, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("marshaling %s record: %w", name, err)
			}
			lines = append(lines, data)
		}

		if err := writeJSONL(filepath.Join(dir, name+".jsonl"), lines); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONL atomically writes records to a JSONL file.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
