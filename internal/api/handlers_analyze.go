package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dgallion1/papersect/internal/analyze"
	"github.com/dgallion1/papersect/internal/fetch"
	"github.com/dgallion1/papersect/internal/parser"
	"github.com/dgallion1/papersect/internal/sections"
)

type urlRequest struct {
	URL string `json:"url"`
}

type linesRequest struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	ctx, cancel := s.analyzeContext(r)
	defer cancel()
	res, err := s.analyzer.AnalyzeFile(ctx, filename, data)
	s.respond(w, r, res, err)
}

func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 64*1024)).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	u, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		jsonError(w, "url must be an absolute http or https url", http.StatusBadRequest)
		return
	}

	ctx, cancel := s.analyzeContext(r)
	defer cancel()
	res, err := s.analyzer.AnalyzeURL(ctx, u.String())
	s.respond(w, r, res, err)
}

func (s *Server) handleAnalyzeLines(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req linesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := s.analyzeContext(r)
	defer cancel()
	res, err := s.analyzer.AnalyzeLines(ctx, req.Title, req.Lines)
	s.respond(w, r, res, err)
}

func (s *Server) analyzeContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.cfg.AnalyzeTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), s.cfg.AnalyzeTimeout)
}

// respond writes the analysis as JSON, or as the plain-text report when the
// caller asked for a download.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, res *analyze.Result, err error) {
	if err != nil {
		msg, code := errorStatus(err)
		if code >= 500 {
			s.log.Error("analysis failed", "path", r.URL.Path, "error", err)
		}
		jsonError(w, msg, code)
		return
	}

	if r.URL.Query().Get("download") == "true" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.ReportFilename))
		_, _ = io.WriteString(w, res.Report)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func errorStatus(err error) (string, int) {
	switch {
	case errors.Is(err, sections.ErrNoContentDetected):
		return "Could not identify research paper content.", http.StatusUnprocessableEntity
	case errors.Is(err, fetch.ErrDisallowed):
		return err.Error(), http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return "analysis timed out", http.StatusGatewayTimeout
	case errors.Is(err, analyze.ErrParse):
		return err.Error(), http.StatusUnprocessableEntity
	case errors.Is(err, analyze.ErrFetch):
		return err.Error(), http.StatusBadGateway
	default:
		return err.Error(), http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
