package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rishwanthvallala/train-data-analyser/internal/analysis"
	"github.com/rishwanthvallala/train-data-analyser/internal/db"
	"github.com/rishwanthvallala/train-data-analyser/internal/models"
	"github.com/rishwanthvallala/train-data-analyser/internal/monitoring"
	"github.com/rishwanthvallala/train-data-analyser/internal/report"
	"github.com/rishwanthvallala/train-data-analyser/internal/tabular"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 32 << 20

// Server represents the API server
type Server struct {
	db        *db.Database
	router    *mux.Router
	uploadDir string
	opts      analysis.Options
}

// NewServer creates a new API server
func NewServer(database *db.Database, uploadDir string, opts analysis.Options) *Server {
	s := &Server{
		db:        database,
		router:    mux.NewRouter(),
		uploadDir: uploadDir,
		opts:      opts,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Upload UI
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/upload", s.handleUpload).Methods("POST")

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// JSON API
	s.router.HandleFunc("/api/v1/analyze", s.handleAnalyze).Methods("POST")
	s.router.HandleFunc("/api/v1/uploads", s.handleListUploads).Methods("GET")
	s.router.HandleFunc("/api/v1/stats", s.handleStats).Methods("GET")

	s.router.Use(loggingMiddleware)
}

// Router returns the configured router
func (s *Server) Router() *mux.Router {
	return s.router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		monitoring.Logf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// Response helpers
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *meta       `json:"meta,omitempty"`
}

type meta struct {
	Total   int   `json:"total,omitempty"`
	Limit   int   `json:"limit,omitempty"`
	QueryMs int64 `json:"query_ms,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: false, Error: message})
}

func respondWithMeta(w http.ResponseWriter, data interface{}, m *meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data, Meta: m})
}

// errBadRequest marks malformed upload requests (not pipeline failures).
var errBadRequest = errors.New("bad request")

// errorStatus maps errors onto HTTP status codes. Malformed requests are
// 400; the three terminal pipeline kinds mean the file content is at fault,
// 422; everything else is ours.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, tabular.ErrUnreadable),
		errors.Is(err, analysis.ErrNoDataStart),
		errors.Is(err, analysis.ErrEmptyAfterCleaning):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Handlers
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Train Data Analyser</title></head>
<body>
  <h1>Train Data Analyser</h1>
  <p>Upload a telemetry export (.xlsx or .csv) to analyse the trip.</p>
  <form action="/upload" method="post" enctype="multipart/form-data">
    <input type="file" name="file" accept=".xlsx,.csv" required>
    <button type="submit">Analyse</button>
  </form>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// processUpload saves the uploaded file, decodes it, runs the pipeline, and
// records the outcome in upload history. The saved file is kept; the
// analysis result is not.
func (s *Server) processUpload(r *http.Request) (*models.AnalysisResult, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("%w: invalid multipart request: %v", errBadRequest, err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing file field: %v", errBadRequest, err)
	}
	defer file.Close()

	// Base strips any client-supplied directory components.
	filename := filepath.Base(header.Filename)
	if !tabular.AllowedExtension(filename) {
		return nil, fmt.Errorf("%w: unsupported file type %q, expected .xlsx or .csv", errBadRequest, filepath.Ext(filename))
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}
	path := filepath.Join(s.uploadDir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}
	size, err := io.Copy(dst, file)
	dst.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	record := models.UploadRecord{Filename: filename, SizeBytes: size, Status: "ok"}
	result, err := s.analyzeFile(path)
	if err != nil {
		record.Status = err.Error()
	} else {
		record.SampleCount = result.SampleCount
	}
	if s.db != nil {
		if dbErr := s.db.RecordUpload(&record); dbErr != nil {
			monitoring.Logf("failed to record upload %s: %v", filename, dbErr)
		}
	}
	return result, err
}

func (s *Server) analyzeFile(path string) (*models.AnalysisResult, error) {
	table, err := tabular.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return analysis.Analyze(table, s.opts)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	result, err := s.processUpload(r)
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.WriteCharts(w, result); err != nil {
		monitoring.Logf("failed to render report: %v", err)
	}
}

// analysisPayload is the JSON shape handed back by /api/v1/analyze: the
// display strings alongside the structured result.
type analysisPayload struct {
	Metrics      report.MetricStrings  `json:"metrics"`
	StopAnalysis []string              `json:"stop_analysis"`
	Result       models.AnalysisResult `json:"result"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, err := s.processUpload(r)
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, analysisPayload{
		Metrics:      report.FormatMetrics(result.Metrics),
		StopAnalysis: report.StopAnalysisLines(result.Stops),
		Result:       *result,
	})
}

func (s *Server) handleListUploads(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	uploads, err := s.db.ListUploads(limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithMeta(w, uploads, &meta{
		Total:   len(uploads),
		Limit:   limit,
		QueryMs: time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetStats()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
