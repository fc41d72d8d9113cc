package table

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write serializes the table as indented JSON. encoding/json emits map keys
// in ascending order, which is exactly the codes-ascending invariant of the
// artifact.
func (t *Table) Write(w io.Writer) error {
	data, err := json.MarshalIndent(t.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// WriteFile writes the JSON artifact to path, creating parent directories
// as needed.
func (t *Table) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create table directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table file: %w", err)
	}
	defer f.Close()
	return t.Write(f)
}
