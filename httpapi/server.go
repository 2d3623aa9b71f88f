// Package httpapi is a read-only review surface over the grading
// results CSV. It adds no storage of its own.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/klauspost/compress/gzhttp"

	"github.com/rrmudry/labgrader/conf"
)

type Server struct {
	csvPath string
	router  *chi.Mux
}

func New(cfg conf.Config) *Server {
	router := chi.NewRouter()

	logger := httplog.NewLogger("labgrader", httplog.Options{
		LogLevel:         slog.LevelInfo,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         3000,
	}))

	server := &Server{
		csvPath: cfg.OutputCSV,
		router:  router,
	}

	server.routes()

	return server
}

func (server *Server) routes() {
	server.router.Get("/api/rows", server.getRows)
	server.router.Get("/api/summary", server.getSummary)
	server.router.Get("/healthz", server.getHealth)
}

// Handler returns the full middleware-wrapped handler.
func (server *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(server.router)
}

func (server *Server) Start(address string) error {
	return http.ListenAndServe(address, server.Handler())
}
