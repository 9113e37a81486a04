// Package segment splits a linear sequence of text lines, typically
// extracted from a PDF, into paper sections using keyword triggers.
package segment

import (
	"strings"

	"github.com/dgallion1/papersect/internal/sections"
)

// DefaultBootstrapWindow is how many leading lines may be captured as
// abstract before any trigger has been seen.
const DefaultBootstrapWindow = 20

// Segmenter assigns lines to sections with a cursor that moves whenever a
// line contains a trigger phrase.
type Segmenter struct {
	Table sections.KeywordTable

	// BootstrapWindow bounds speculative abstract capture. Zero disables it.
	BootstrapWindow int

	// KeepTriggerLines includes the line that moved the cursor in the
	// section's content.
	KeepTriggerLines bool
}

// New returns a Segmenter with the default window that keeps trigger lines.
func New(table sections.KeywordTable) *Segmenter {
	return &Segmenter{
		Table:            table,
		BootstrapWindow:  DefaultBootstrapWindow,
		KeepTriggerLines: true,
	}
}

// Extract segments lines with the default Segmenter for table.
func Extract(lines []string, table sections.KeywordTable) sections.Sections {
	return New(table).Extract(lines)
}

// Extract runs the segmenter over lines. Empty input yields placeholders
// for every section.
func (s *Segmenter) Extract(lines []string) sections.Sections {
	acc := make(map[sections.Key]*strings.Builder, len(sections.Keys))
	for _, k := range sections.Keys {
		acc[k] = &strings.Builder{}
	}

	var cursor sections.Key
	for i, raw := range lines {
		line := strings.ToLower(strings.TrimSpace(raw))

		trigger := false
		if k, ok := s.Table.Match(line); ok {
			cursor = k
			trigger = true
		}

		if cursor != "" && strings.TrimSpace(raw) != "" && (s.KeepTriggerLines || !trigger) {
			acc[cursor].WriteString(raw)
			acc[cursor].WriteString("\n")
		}

		if cursor == "" && i < s.BootstrapWindow && !strings.Contains(line, "abstract") {
			acc[sections.Abstract].WriteString(raw)
			acc[sections.Abstract].WriteString("\n")
		}
	}

	var out sections.Sections
	for _, k := range sections.Keys {
		out = out.With(k, strings.TrimSpace(acc[k].String()))
	}
	return out.Fill(sections.LinePlaceholders)
}

// SplitLines tokenizes text into lines, accepting \n, \r\n and form feeds
// as separators. Empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	return strings.Split(text, "\n")
}
