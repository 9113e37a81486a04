// Package analyze routes a parsed paper to the DOM extractor or the linear
// segmenter and derives study aids from the resulting sections.
package analyze

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/papersect/internal/docextract"
	"github.com/dgallion1/papersect/internal/document"
	"github.com/dgallion1/papersect/internal/fetch"
	"github.com/dgallion1/papersect/internal/highlight"
	"github.com/dgallion1/papersect/internal/parser"
	"github.com/dgallion1/papersect/internal/report"
	"github.com/dgallion1/papersect/internal/sections"
	"github.com/dgallion1/papersect/internal/segment"
	"github.com/dgallion1/papersect/internal/study"
)

// Route names the extraction path a document took.
type Route string

const (
	RouteDocument Route = "document"
	RouteLinear   Route = "linear"
)

var (
	// ErrFetch wraps every failure to retrieve a remote paper.
	ErrFetch = errors.New("fetch failed")
	// ErrParse wraps failures to decode a file into a document.
	ErrParse = errors.New("parse failed")
)

// Result is everything derived from one paper.
type Result struct {
	ID             string            `json:"analysis_id"`
	Title          string            `json:"title"`
	ContentType    string            `json:"content_type"`
	Route          Route             `json:"route"`
	Sections       sections.Sections `json:"sections"`
	Highlighted    sections.Sections `json:"highlighted"`
	Questions      []string          `json:"questions"`
	Flashcards     []study.Flashcard `json:"flashcards"`
	Report         string            `json:"-"`
	ReportFilename string            `json:"report_filename"`
}

// Analyzer is the request/response orchestrator around the stateless
// extraction core.
type Analyzer struct {
	fetcher     *fetch.Fetcher
	segmenter   *segment.Segmenter
	highlighter *highlight.Highlighter
	parserOpts  parser.Options
	stats       *Stats
	log         *slog.Logger
}

// NewAnalyzer wires an Analyzer. fetcher may be nil when URL analysis is
// not needed.
func NewAnalyzer(fetcher *fetch.Fetcher, parserOpts parser.Options, stats *Stats, log *slog.Logger) *Analyzer {
	if stats == nil {
		stats = NewStats(time.Hour)
	}
	return &Analyzer{
		fetcher:     fetcher,
		segmenter:   segment.New(sections.LineKeywords),
		highlighter: highlight.Default(),
		parserOpts:  parserOpts,
		stats:       stats,
		log:         log,
	}
}

// Stats returns the latency recorder.
func (a *Analyzer) Stats() *Stats {
	return a.stats
}

// Analyze extracts sections from doc and derives highlights, questions,
// flashcards and the text report. Documents the DOM extractor refuses are
// segmented line by line instead.
func (a *Analyzer) Analyze(ctx context.Context, doc *document.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrParse)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := a.log.With("title", doc.Title, "content_type", doc.ContentType)

	route := RouteDocument
	s, err := docextract.Extract(doc, sections.DocumentKeywords)
	if errors.Is(err, sections.ErrUnsupportedContentType) {
		route = RouteLinear
		s = a.segmenter.Extract(doc.Lines)
		if !s.AnyPrimary() {
			err = sections.ErrNoContentDetected
		} else {
			err = nil
		}
	}
	if err != nil {
		log.Info("no paper content", "route", route, "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var highlighted sections.Sections
	for _, k := range sections.Keys {
		text := s.Get(k)
		if s.Found(k) {
			text = a.highlighter.Highlight(text)
		}
		highlighted = highlighted.With(k, text)
	}

	questions := study.GenerateQuestions(s)
	res := &Result{
		ID:             uuid.NewString(),
		Title:          doc.Title,
		ContentType:    doc.ContentType,
		Route:          route,
		Sections:       s,
		Highlighted:    highlighted,
		Questions:      questions,
		Flashcards:     study.GenerateFlashcards(s),
		Report:         report.Build(doc.Title, s, questions),
		ReportFilename: report.Filename(doc.Title),
	}

	elapsed := time.Since(start)
	a.stats.Record(route, elapsed)
	log.Info("analysis complete", "analysis_id", res.ID, "route", route, "duration_ms", elapsed.Milliseconds())
	return res, nil
}

// AnalyzeFile parses an uploaded file by extension and analyzes it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, filename string, data []byte) (*Result, error) {
	p, err := parser.ForFile(filename, a.parserOpts)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return a.Analyze(ctx, doc)
}

// AnalyzeURL fetches a page and analyzes it. The parser is chosen by the
// response Content-Type, falling back to the URL's extension.
func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) (*Result, error) {
	if a.fetcher == nil {
		return nil, fmt.Errorf("%w: url analysis is not configured", ErrFetch)
	}
	page, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, rawURL, err)
	}

	filename := urlFilename(page.FinalURL)
	p, err := parser.ForContentType(page.ContentType, a.parserOpts)
	if err != nil {
		var extErr error
		if p, extErr = parser.ForFile(filename, a.parserOpts); extErr != nil {
			return nil, err
		}
	}
	doc, err := p.Parse(bytes.NewReader(page.Body), filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return a.Analyze(ctx, doc)
}

// AnalyzeLines analyzes already-extracted text lines, such as the output of
// an external PDF text extractor.
func (a *Analyzer) AnalyzeLines(ctx context.Context, title string, lines []string) (*Result, error) {
	return a.Analyze(ctx, &document.Document{
		Title:       title,
		ContentType: document.TypeText,
		Lines:       lines,
	})
}

func urlFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "paper"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "paper"
	}
	return name
}
