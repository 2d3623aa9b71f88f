package grader

import (
	"log/slog"

	"github.com/rrmudry/labgrader/conf"
)

// Service runs the grading pipeline over one input directory. All
// dependencies are injected; nothing reads the process environment.
type Service struct {
	renderer PageRenderer
	scanner  IdentifierScanner
	grading  GradingClient

	inputDir  string
	outputCSV string

	logger *slog.Logger
}

func New(cfg conf.Config, renderer PageRenderer, scanner IdentifierScanner, grading GradingClient) *Service {
	return &Service{
		renderer:  renderer,
		scanner:   scanner,
		grading:   grading,
		inputDir:  cfg.InputDir,
		outputCSV: cfg.OutputCSV,
		logger:    slog.Default().With("module", "grader"),
	}
}

// SetLogger replaces the service logger. The terminal front-end uses
// this to keep diagnostics out of the terminal bubbletea owns.
func (s *Service) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// OutputCSV returns the path the batch writes its rows to.
func (s *Service) OutputCSV() string {
	return s.outputCSV
}
