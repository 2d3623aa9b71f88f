package grader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes rows to path through a temp file in the same
// directory followed by a rename, so readers never observe a
// half-written file.
func WriteCSV(path string, rows []ResultRow) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".grades-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file in '%s': %w", dir, err)
	}
	tmpName := tmp.Name()

	if err := gocsv.MarshalFile(&rows, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to marshal result rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move results to '%s': %w", path, err)
	}
	return nil
}

// ReadCSV reads result rows back from a file written by WriteCSV.
func ReadCSV(path string) ([]ResultRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file '%s': %w", path, err)
	}
	defer f.Close()

	rows := []ResultRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse results file '%s': %w", path, err)
	}
	return rows, nil
}
