package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/corpdata/registryd/pkg/match"
	"github.com/corpdata/registryd/pkg/status"
)

// Server holds the lookup service state.
type Server struct {
	index   Matcher
	report  *status.Report
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a lookup server over a built index. The report may be
// nil when no batch run has been recorded; metrics may be nil in tests.
func NewServer(index Matcher, report *status.Report, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		index:   index,
		report:  report,
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	if raw == "" {
		sendError(w, "Name is required", http.StatusBadRequest)
		return
	}

	doc, err := s.index.Lookup(raw)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			if s.metrics != nil {
				s.metrics.RecordLookup(false)
			}
			sendError(w, "No entity matches name", http.StatusNotFound)
			return
		}
		sendError(w, "Lookup failed", http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordLookup(true)
	}
	sendSuccess(w, MatchResponse{Name: raw, DocumentNumber: doc})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{IndexSize: s.index.Size()}
	if s.report != nil {
		resp.RunID = s.report.RunID
		resp.LastUpdate = s.report.LastUpdate.Format("2006-01-02T15:04:05Z07:00")
		resp.RecordsIn = s.report.RecordsIn
		resp.RecordsFailed = s.report.RecordsFailed
	}
	sendSuccess(w, resp)
}

func sendSuccess(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}

func sendError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
