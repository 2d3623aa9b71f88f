// Package grader orchestrates the per-submission grading pipeline
// and the sequential batch run over an input directory.
package grader

import (
	"context"
	"image"

	"github.com/rrmudry/labgrader/gemini"
)

// Submission is one input PDF file, discovered by directory
// enumeration and consumed exactly once.
type Submission struct {
	Path     string
	Filename string
}

// ResultRow is the flat output record for one submission. Exactly one
// row exists per submission that rasterized successfully.
type ResultRow struct {
	Filename    string `csv:"Filename"`
	StudentID   string `csv:"Student ID"`
	StudentName string `csv:"Student Name"`
	Score       int    `csv:"Score"`
	Flagged     string `csv:"Flagged"`
	FlagReason  string `csv:"Flag Reason"`
	Feedback    string `csv:"Feedback"`
}

// PageRenderer produces one image per PDF page in original order.
type PageRenderer interface {
	RenderFile(path string) ([]image.Image, error)
}

// IdentifierScanner searches page images for an embedded identifier,
// first non-absent hit in page order winning.
type IdentifierScanner interface {
	First(pages []image.Image) (string, bool)
}

// GradingClient submits all pages of one submission for grading. An
// error is the failure variant; the pipeline converts it into a
// sentinel row.
type GradingClient interface {
	Grade(ctx context.Context, pages []image.Image) (gemini.Result, error)
}
