package grader

import "time"

const (
	MsgTypeRunStarted         = "run_started"
	MsgTypeSubmissionStarted  = "submission_started"
	MsgTypeIdentifierFound    = "identifier_found"
	MsgTypeSubmissionGraded   = "submission_graded"
	MsgTypeSubmissionSkipped  = "submission_skipped"
	MsgTypeSubmissionFinished = "submission_finished"
	MsgTypeRunFinished        = "run_finished"
)

// Identifier sources carried by IdentifierFound.
const (
	SourceQR    = "qr"
	SourceModel = "model"
)

// Event is emitted synchronously through the sink passed to Run.
type Event interface {
	Type() string
}

type RunStarted struct {
	RunID     string
	InputDir  string
	Total     int
	StartedAt time.Time
}

func (RunStarted) Type() string { return MsgTypeRunStarted }

// SubmissionStarted marks the start of submission Index of Total
// (1-based, enumeration order).
type SubmissionStarted struct {
	Index    int
	Total    int
	Filename string
}

func (SubmissionStarted) Type() string { return MsgTypeSubmissionStarted }

type IdentifierFound struct {
	Filename string
	SID      string
	Source   string
}

func (IdentifierFound) Type() string { return MsgTypeIdentifierFound }

type SubmissionGraded struct {
	Filename string
	Row      ResultRow
}

func (SubmissionGraded) Type() string { return MsgTypeSubmissionGraded }

// SubmissionSkipped means the submission produced no row: the PDF
// could not be rasterized or the pipeline panicked. The batch
// continues.
type SubmissionSkipped struct {
	Filename string
	Err      error
}

func (SubmissionSkipped) Type() string { return MsgTypeSubmissionSkipped }

// SubmissionFinished fires after every submission, graded or skipped.
// Index/Total gives the exact progress ratio: k of N done.
type SubmissionFinished struct {
	Index int
	Total int
}

func (SubmissionFinished) Type() string { return MsgTypeSubmissionFinished }

type RunFinished struct {
	Rows    int
	CSVPath string
	Elapsed time.Duration
}

func (RunFinished) Type() string { return MsgTypeRunFinished }
