package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgallion1/profilex/internal/export"
	"github.com/dgallion1/profilex/internal/profile"
)

type extractRequest struct {
	Text string `json:"text"`
}

// decodeExtractRequest reads and validates the JSON body shared by the
// extract and CSV export endpoints. On failure it writes the error response
// itself and returns ok=false.
func (s *Server) decodeExtractRequest(w http.ResponseWriter, r *http.Request) (extractRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, "payload too large", http.StatusRequestEntityTooLarge)
			return req, false
		}
		jsonError(w, "invalid request: JSON body with a 'text' key is required", http.StatusBadRequest)
		return req, false
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "no text provided", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeExtractRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	result := profile.Extract(req.Text)
	if s.stats != nil {
		s.stats.Record(time.Since(start).Milliseconds(), len(result.People))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeExtractRequest(w, r)
	if !ok {
		return
	}

	result := profile.Extract(req.Text)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="profiles.csv"`)
	if err := export.WriteResult(w, result); err != nil {
		s.log.Error("csv export failed", "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
