package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/export"
	"github.com/ggonc/gonc/internal/fetcher"
)

// AnalyzeRequest is the request body for the analysis endpoints.
// When URL is set the text is fetched from it instead.
type AnalyzeRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	URL      string `json:"url,omitempty"`
}

// SummaryResponse holds the hit counts of every category
type SummaryResponse struct {
	Counts domain.FeatureCounts `json:"counts"`
	Total  int                  `json:"total"`
}

// CategoryInfo describes one analysis category
type CategoryInfo struct {
	Label    string   `json:"label"`
	Slug     string   `json:"slug"`
	Columns  []string `json:"columns"`
	Filename string   `json:"filename"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	var out []CategoryInfo
	for _, c := range domain.Categories() {
		out = append(out, CategoryInfo{
			Label:    string(c),
			Slug:     c.Slug(),
			Columns:  c.Columns(),
			Filename: c.Filename(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": out})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyzeJSON(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeRequestError(w, r, err)
		return
	}

	c, err := domain.ParseCategory(r.FormValue("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	text, err := fetcher.Read(header.Filename, file)
	if err != nil {
		s.writeRequestError(w, r, err)
		return
	}

	a, err := s.analyzer.AnalyzeText(text, c)
	if err != nil {
		s.writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyzeJSON(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, a.Category, a.Rows); err != nil {
		s.writeServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Category.Filename()))
	w.Write(buf.Bytes())
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyzeJSON(w, r)
	if !ok {
		return
	}
	s.writeChart(w, r, a.Counts)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	text, ok := s.resolveText(w, r, req)
	if !ok {
		return
	}

	counts := s.analyzer.Summary(text)
	if r.URL.Query().Get("format") == "png" {
		s.writeChart(w, r, counts)
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{Counts: counts, Total: counts.Total()})
}

// analyzeJSON decodes an AnalyzeRequest and runs it. On failure the error
// response is already written.
func (s *Server) analyzeJSON(w http.ResponseWriter, r *http.Request) (*domain.Analysis, bool) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return nil, false
	}

	c, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	text, ok := s.resolveText(w, r, req)
	if !ok {
		return nil, false
	}

	a, err := s.analyzer.AnalyzeText(text, c)
	if err != nil {
		s.writeServerError(w, r, err)
		return nil, false
	}
	return a, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) resolveText(w http.ResponseWriter, r *http.Request, req AnalyzeRequest) (string, bool) {
	if strings.TrimSpace(req.URL) == "" {
		return req.Text, true
	}
	text, err := s.fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, fetcher.ErrUnsupportedType) {
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
			return "", false
		}
		log.Printf("[api] fetch %s: %v", req.URL, err)
		writeError(w, http.StatusBadGateway, "could not fetch URL: "+err.Error())
		return "", false
	}
	return text, true
}

func (s *Server) writeChart(w http.ResponseWriter, r *http.Request, counts domain.FeatureCounts) {
	var buf bytes.Buffer
	if err := export.PieChart(&buf, counts, export.ChartTitle); err != nil {
		if errors.Is(err, export.ErrNoData) {
			writeError(w, http.StatusUnprocessableEntity, "nothing to chart")
			return
		}
		s.writeServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// writeRequestError maps input errors to 4xx codes
func (s *Server) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
	case errors.Is(err, fetcher.ErrUnsupportedType):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
		writeError(w, http.StatusBadRequest, "expected multipart form")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func (s *Server) writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[api] %s %s: %v", r.Method, r.URL.Path, err)
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
