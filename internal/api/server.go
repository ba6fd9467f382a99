// Package api exposes the filter cascade and shot renderer over HTTP.
// Every request recomputes the pipeline from the immutable dataset, so
// concurrent sessions cannot observe each other's selections; rendered
// artifacts are cached by selection key since the data never changes
// within a process.
package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	gocache "github.com/patrickmn/go-cache"

	"github.com/pitchlab/shotmap/internal/shots"
	"github.com/pitchlab/shotmap/internal/store"
)

// ANSI escape codes for request log colouring.
const (
	colorCyan      = "\033[36m"
	colorReset     = "\033[0m"
	colorYellow    = "\033[33m"
	colorBoldGreen = "\033[1;32m"
	colorBoldRed   = "\033[1;31m"
)

// Server serves the shot map API over a fixed, read-only dataset.
type Server struct {
	dataset   []shots.Shot
	renders   *gocache.Cache
	store     *store.Store // optional snapshot store; may be nil
	exportDir string
}

// NewServer builds a server over the merged, normalized dataset. st may
// be nil when no snapshot database is configured.
func NewServer(dataset []shots.Shot, st *store.Store, exportDir string) *Server {
	return &Server{
		dataset:   dataset,
		renders:   gocache.New(30*time.Minute, 10*time.Minute),
		store:     st,
		exportDir: exportDir,
	}
}

// Routes returns the API router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/leagues", s.handleLeagues)
	r.Get("/options", s.handleOptions)
	r.Get("/summary", s.handleSummary)
	r.Get("/shotmap.png", s.handleShotMapPNG)
	r.Get("/shotmap", s.handleShotMapChart)
	r.Post("/export", s.handleExport)
	r.Get("/admin/db/stats", s.handleDBStats)
	return r
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// RequestLogger logs method, path, status, and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}
