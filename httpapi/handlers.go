package httpapi

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v2"

	"github.com/rrmudry/labgrader/grader"
)

type summary struct {
	Rows       int     `json:"rows"`
	MeanScore  float64 `json:"mean_score"`
	Flagged    int     `json:"flagged"`
	Identified int     `json:"identified"`
}

func (server *Server) getRows(w http.ResponseWriter, r *http.Request) {
	rows, ok := server.loadRows(w, r)
	if !ok {
		return
	}
	writeSuccessJson(w, rows)
}

func (server *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	rows, ok := server.loadRows(w, r)
	if !ok {
		return
	}

	sum := summary{Rows: len(rows)}
	scoreTotal := 0
	for _, row := range rows {
		scoreTotal += row.Score
		if row.Flagged == "YES" {
			sum.Flagged++
		}
		if row.StudentID != "" && row.StudentID != "N/A" {
			sum.Identified++
		}
	}
	if len(rows) > 0 {
		sum.MeanScore = float64(scoreTotal) / float64(len(rows))
	}

	writeSuccessJson(w, sum)
}

func (server *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccessJson(w, map[string]string{"status": "ok"})
}

// loadRows reads the results CSV, writing the error envelope itself
// when the read fails. A missing file means no batch has finished yet.
func (server *Server) loadRows(w http.ResponseWriter, r *http.Request) ([]grader.ResultRow, bool) {
	logger := httplog.LogEntry(r.Context())

	rows, err := grader.ReadCSV(server.csvPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeErrorJson(w, "no results yet", http.StatusNotFound, "no_results")
			return nil, false
		}
		logger.Error("failed to read results csv", "path", server.csvPath, "error", err)
		writeErrorJson(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError, "")
		return nil, false
	}
	return rows, true
}
