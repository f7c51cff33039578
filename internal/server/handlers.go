package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spacesedan/sentimeter/internal/analyzer"
	"github.com/spacesedan/sentimeter/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", nil)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req := models.AnalysisRequest{Username: r.PostFormValue("user_id")}

	slog.Debug("Received analysis request", slog.String("user_id", req.Username))

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		var analysisErr *analyzer.Error
		if errors.As(err, &analysisErr) {
			writeJSONError(w, analysisErr.StatusCode(), analysisErr.Message)
			return
		}
		slog.Error("Analysis request failed", slog.String("error", err.Error()))
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.render(w, "result.html", result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// render executes into a buffer first so a template failure still produces a
// clean error response.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()))
		writeJSONError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write JSON response", slog.String("error", err.Error()))
	}
}
