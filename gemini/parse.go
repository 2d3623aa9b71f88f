package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the structured grading outcome parsed from the model's
// JSON reply. It is produced once per submission and never mutated.
type Result struct {
	StudentName      string `json:"student_name_detected"`
	SID              string `json:"sid_detected"`
	Score            int    `json:"score"`
	Feedback         string `json:"feedback"`
	PlagiarismFlag   bool   `json:"plagiarism_flag"`
	PlagiarismReason string `json:"plagiarism_reason"`
}

// stripFence removes an optional fenced-code-block wrapper the model
// may add despite the "no markdown" instruction. Text without a fence
// passes through unchanged, so the function is idempotent.
func stripFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseResult parses the response text into a Result. Missing fields
// default (name "Unknown", score 0, empty strings); the score is
// clamped to [0, 100].
func parseResult(text string) (Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(stripFence(text)), &res); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	if res.StudentName == "" {
		res.StudentName = "Unknown"
	}
	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}
	return res, nil
}
