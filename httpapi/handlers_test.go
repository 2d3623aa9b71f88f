package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrmudry/labgrader/conf"
	"github.com/rrmudry/labgrader/grader"
	"github.com/rrmudry/labgrader/httpapi"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	ErrCode string          `json:"code"`
	ErrMsg  string          `json:"message"`
}

func newTestServer(t *testing.T, rows []grader.ResultRow) *httpapi.Server {
	t.Helper()
	cfg := conf.New()
	cfg.OutputCSV = filepath.Join(t.TempDir(), "grades.csv")
	if rows != nil {
		require.NoError(t, grader.WriteCSV(cfg.OutputCSV, rows))
	}
	return httpapi.New(cfg)
}

func get(t *testing.T, server *httpapi.Server, path string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func sampleRows() []grader.ResultRow {
	return []grader.ResultRow{
		{Filename: "a.pdf", StudentID: "000111", StudentName: "Ada", Score: 80, Flagged: "No"},
		{Filename: "b.pdf", StudentID: "N/A", StudentName: "Unknown", Score: 40, Flagged: "YES", FlagReason: "robotic"},
	}
}

func TestGetRows(t *testing.T) {
	server := newTestServer(t, sampleRows())

	code, env := get(t, server, "/api/rows")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	var rows []grader.ResultRow
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Equal(t, sampleRows(), rows)
}

func TestGetRowsNoResultsYet(t *testing.T) {
	server := newTestServer(t, nil)

	code, env := get(t, server, "/api/rows")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "no_results", env.ErrCode)
	assert.Equal(t, "no results yet", env.ErrMsg)
}

func TestGetSummary(t *testing.T) {
	server := newTestServer(t, sampleRows())

	code, env := get(t, server, "/api/summary")
	require.Equal(t, http.StatusOK, code)

	var sum struct {
		Rows       int     `json:"rows"`
		MeanScore  float64 `json:"mean_score"`
		Flagged    int     `json:"flagged"`
		Identified int     `json:"identified"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.Equal(t, 2, sum.Rows)
	assert.Equal(t, 60.0, sum.MeanScore)
	assert.Equal(t, 1, sum.Flagged)
	assert.Equal(t, 1, sum.Identified)
}

func TestGetSummaryEmptyCSV(t *testing.T) {
	server := newTestServer(t, []grader.ResultRow{})

	code, env := get(t, server, "/api/summary")
	require.Equal(t, http.StatusOK, code)

	var sum struct {
		Rows      int     `json:"rows"`
		MeanScore float64 `json:"mean_score"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.Equal(t, 0, sum.Rows)
	assert.Equal(t, 0.0, sum.MeanScore)
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t, nil)

	code, env := get(t, server, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
}
