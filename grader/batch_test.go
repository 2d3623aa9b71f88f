package grader_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrmudry/labgrader/gemini"
	"github.com/rrmudry/labgrader/grader"
)

func TestRunNoSubmissions(t *testing.T) {
	svc, cfg := newTestService(t, nil, fakeRenderer{}, fakeScanner{}, fakeGrader{})

	rows, err := svc.Run(context.Background(), nil)
	assert.ErrorIs(t, err, grader.ErrNoSubmissions)
	assert.Empty(t, rows)

	// no output file is written for an empty batch
	_, statErr := os.Stat(cfg.OutputCSV)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunIgnoresNonPDFFiles(t *testing.T) {
	g := fakeGrader{res: gemini.Result{StudentName: "Ada", Score: 1}}
	svc, cfg := newTestService(t, []string{"a.pdf"}, fakeRenderer{}, fakeScanner{}, g)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "notes.txt"), []byte("x"), 0644))

	rows, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, len(rows))
	assert.Equal(t, "a.pdf", rows[0].Filename)
}

func TestRunProgressRatio(t *testing.T) {
	const total = 4
	files := make([]string, total)
	for i := range files {
		files[i] = fmt.Sprintf("s%d.pdf", i)
	}
	g := fakeGrader{res: gemini.Result{StudentName: "Ada", Score: 1}}
	svc, _ := newTestService(t, files, fakeRenderer{}, fakeScanner{}, g)

	var ratios []float64
	_, err := svc.Run(context.Background(), func(ev grader.Event) {
		if e, ok := ev.(grader.SubmissionFinished); ok {
			ratios = append(ratios, float64(e.Index)/float64(e.Total))
		}
	})
	require.NoError(t, err)

	require.Equal(t, total, len(ratios))
	for k, ratio := range ratios {
		assert.Equal(t, float64(k+1)/float64(total), ratio)
	}
	assert.Equal(t, 1.0, ratios[total-1])
}

func TestRunEventSequence(t *testing.T) {
	g := fakeGrader{res: gemini.Result{StudentName: "Ada", SID: "123", Score: 70}}
	svc, _ := newTestService(t, []string{"a.pdf"}, fakeRenderer{}, fakeScanner{}, g)

	var types []string
	_, err := svc.Run(context.Background(), func(ev grader.Event) {
		types = append(types, ev.Type())
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		grader.MsgTypeRunStarted,
		grader.MsgTypeSubmissionStarted,
		grader.MsgTypeIdentifierFound,
		grader.MsgTypeSubmissionGraded,
		grader.MsgTypeSubmissionFinished,
		grader.MsgTypeRunFinished,
	}, types)
}

func TestRunFinishedEventDetails(t *testing.T) {
	g := fakeGrader{res: gemini.Result{StudentName: "Ada", Score: 5}}
	svc, cfg := newTestService(t, []string{"a.pdf", "b.pdf"}, fakeRenderer{}, fakeScanner{}, g)

	var finished *grader.RunFinished
	_, err := svc.Run(context.Background(), func(ev grader.Event) {
		if e, ok := ev.(grader.RunFinished); ok {
			finished = &e
		}
	})
	require.NoError(t, err)
	require.NotNil(t, finished)
	assert.Equal(t, 2, finished.Rows)
	assert.Equal(t, cfg.OutputCSV, finished.CSVPath)
}
