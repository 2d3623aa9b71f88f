package grader

import (
	"context"
	"fmt"

	"github.com/rrmudry/labgrader/gemini"
)

// Sentinel identifier values the model may report; neither is
// accepted as a fallback identifier.
const (
	sidAbsent = "N/A"
	sidError  = "Error"
)

// processSubmission runs the pipeline for one submission: rasterize,
// scan for an identifier, grade, reconcile, assemble the row. It
// returns ok=false when the submission produced no row (rasterization
// failure or panic); a grading failure still produces a sentinel row.
func (s *Service) processSubmission(ctx context.Context, sub Submission, emit func(Event)) (row ResultRow, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while processing submission: %v", r)
			s.logger.Error("submission panicked", "filename", sub.Filename, "panic", r)
			emit(SubmissionSkipped{Filename: sub.Filename, Err: err})
			ok = false
		}
	}()

	pages, err := s.renderer.RenderFile(sub.Path)
	if err != nil {
		s.logger.Warn("failed to rasterize submission, skipping",
			"filename", sub.Filename, "error", err)
		emit(SubmissionSkipped{Filename: sub.Filename, Err: err})
		return ResultRow{}, false
	}

	scannedSID, scanned := s.scanner.First(pages)
	if scanned {
		s.logger.Info("QR identifier found", "filename", sub.Filename, "sid", scannedSID)
		emit(IdentifierFound{Filename: sub.Filename, SID: scannedSID, Source: SourceQR})
	}

	result, gradeErr := s.grading.Grade(ctx, pages)
	if gradeErr != nil {
		s.logger.Warn("grading call failed, recording sentinel row",
			"filename", sub.Filename, "error", gradeErr)
		row = sentinelRow(sub.Filename, gradeErr)
		if scanned {
			row.StudentID = scannedSID
		}
		emit(SubmissionGraded{Filename: sub.Filename, Row: row})
		return row, true
	}

	finalSID := reconcileSID(scannedSID, scanned, result.SID)
	if !scanned && finalSID != sidAbsent {
		s.logger.Info("model fallback identifier found", "filename", sub.Filename, "sid", finalSID)
		emit(IdentifierFound{Filename: sub.Filename, SID: finalSID, Source: SourceModel})
	}

	row = ResultRow{
		Filename:    sub.Filename,
		StudentID:   finalSID,
		StudentName: result.StudentName,
		Score:       result.Score,
		Flagged:     flagString(result.PlagiarismFlag),
		FlagReason:  result.PlagiarismReason,
		Feedback:    result.Feedback,
	}
	emit(SubmissionGraded{Filename: sub.Filename, Row: row})
	return row, true
}

// reconcileSID picks the final identifier: a scanned value wins
// verbatim; otherwise the model's self-reported value, unless absent
// or one of the sentinel strings; otherwise the literal "N/A".
func reconcileSID(scannedSID string, scanned bool, modelSID string) string {
	if scanned {
		return scannedSID
	}
	if modelSID != "" && modelSID != sidAbsent && modelSID != sidError {
		return modelSID
	}
	return sidAbsent
}

func sentinelRow(filename string, gradeErr error) ResultRow {
	feedback := fmt.Sprintf("AI processing failed: %v", gradeErr)
	if gemini.IsUnknownModel(gradeErr) {
		feedback += " (the model name may be unrecognized; run with -list-models to see what this key can use)"
	}
	return ResultRow{
		Filename:    filename,
		StudentID:   sidAbsent,
		StudentName: sidError,
		Score:       0,
		Flagged:     flagString(false),
		Feedback:    feedback,
	}
}

func flagString(flagged bool) string {
	if flagged {
		return "YES"
	}
	return "No"
}
