package grader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrmudry/labgrader/grader"
)

func TestWriteReadCSV(t *testing.T) {
	rows := []grader.ResultRow{
		{
			Filename:    "a.pdf",
			StudentID:   "000111",
			StudentName: "Ada Lovelace",
			Score:       87,
			Flagged:     "No",
			Feedback:    "Good momentum analysis, \"quoted\" text and, commas",
		},
		{
			Filename:    "b.pdf",
			StudentID:   "N/A",
			StudentName: "Error",
			Score:       0,
			Flagged:     "YES",
			FlagReason:  "robotic prose",
		},
	}

	path := filepath.Join(t.TempDir(), "grades.csv")
	require.NoError(t, grader.WriteCSV(path, rows))

	got, err := grader.ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriteCSVHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.csv")
	require.NoError(t, grader.WriteCSV(path, []grader.ResultRow{{Filename: "a.pdf"}}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	header := strings.SplitN(string(content), "\n", 2)[0]
	assert.Equal(t, "Filename,Student ID,Student Name,Score,Flagged,Flag Reason,Feedback",
		strings.TrimRight(header, "\r"))
}

func TestWriteCSVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grades.csv")
	require.NoError(t, grader.WriteCSV(path, []grader.ResultRow{{Filename: "a.pdf"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 1, len(entries))
	assert.Equal(t, "grades.csv", entries[0].Name())
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := grader.ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
