// This file provides JSONL export and import for the recipes table,
// with atomic writes via the temp-file, fsync, rename pattern.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/cookbook/internal/log"
	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// ExportJSONL writes every recipe to path as one JSON object per line,
// ordered by recipe_id. The file is written atomically.
func (s *Store) ExportJSONL(path string) error {
	recipes, err := s.List()
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(recipes))
	for _, r := range recipes {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("serializing recipe %d: %w", r.RecipeID, err)
		}
		records = append(records, data)
	}

	if err := writeJSONL(path, records); err != nil {
		return err
	}
	log.Debug("exported recipes", "path", path, "count", len(records))
	return nil
}

// ImportJSONL reads recipes from a JSONL file and inserts each one as a
// new row. Ids are regenerated by the store; a record's date_created is
// preserved when present. Malformed lines are skipped. Returns the
// number of recipes imported.
func (s *Store) ImportJSONL(path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, rec := range records {
		var r types.Recipe
		if err := json.Unmarshal(rec, &r); err != nil {
			continue
		}
		created := r.DateCreated
		r.RecipeID = 0
		id, err := s.Create(&r)
		if err != nil {
			if types.IsValidation(err) {
				continue
			}
			return imported, fmt.Errorf("importing recipe: %w", err)
		}
		if !created.IsZero() {
			if err := s.restoreDateCreated(id, created); err != nil {
				return imported, err
			}
		}
		imported++
	}
	log.Debug("imported recipes", "path", path, "count", imported)
	return imported, nil
}

// restoreDateCreated overwrites the insert timestamp with the one
// carried by an imported record. Import is the single exception to
// date_created immutability; the value still describes the original
// creation time.
func (s *Store) restoreDateCreated(id int64, created time.Time) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	_, err = db.Exec(
		"UPDATE recipes SET date_created = ? WHERE recipe_id = ?",
		created.UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("restoring date_created for recipe %d: %w", id, err)
	}
	return nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable
// line as a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
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
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
