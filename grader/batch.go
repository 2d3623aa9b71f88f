package grader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rrmudry/labgrader/logger"
)

// ErrNoSubmissions means the input directory contains no PDF files.
// No output file is written in that case.
var ErrNoSubmissions = errors.New("no PDF submissions found")

// Run processes every *.pdf in the input directory (non-recursive,
// sorted order) sequentially, blocking on each grading call in turn,
// and writes the collected rows to the output CSV once after the loop
// completes. Events are delivered synchronously to emit; a nil emit
// is a silent run. A crash mid-batch leaves no output file.
func (s *Service) Run(ctx context.Context, emit func(Event)) ([]ResultRow, error) {
	if emit == nil {
		emit = func(Event) {}
	}

	runID := uuid.New().String()
	ctx = logger.WithRunID(logger.WithLogger(ctx, s.logger), runID)
	log := logger.FromContext(ctx)

	matches, err := filepath.Glob(filepath.Join(s.inputDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate '%s': %w", s.inputDir, err)
	}
	if len(matches) == 0 {
		return nil, ErrNoSubmissions
	}

	total := len(matches)
	startedAt := time.Now()
	log.Info("batch started", "input_dir", s.inputDir, "submissions", total)
	emit(RunStarted{RunID: runID, InputDir: s.inputDir, Total: total, StartedAt: startedAt})

	rows := []ResultRow{}
	for i, path := range matches {
		sub := Submission{Path: path, Filename: filepath.Base(path)}
		emit(SubmissionStarted{Index: i + 1, Total: total, Filename: sub.Filename})

		if row, ok := s.processSubmission(ctx, sub, emit); ok {
			rows = append(rows, row)
		}

		emit(SubmissionFinished{Index: i + 1, Total: total})
	}

	if err := WriteCSV(s.outputCSV, rows); err != nil {
		return rows, fmt.Errorf("failed to write results: %w", err)
	}

	elapsed := time.Since(startedAt)
	log.Info("batch finished", "rows", len(rows), "csv", s.outputCSV, "elapsed", elapsed)
	emit(RunFinished{Rows: len(rows), CSVPath: s.outputCSV, Elapsed: elapsed})
	return rows, nil
}
