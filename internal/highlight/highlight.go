// Package highlight marks research vocabulary and concept phrases in
// section text for display.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// Markers wrapped around matches.
const (
	KeywordOpen  = `<span class="highlight">`
	ConceptOpen  = `<span class="concept">`
	MarkerClose  = `</span>`
	phraseWords  = `([A-Za-z][\w-]*(?:[ \t]+[A-Za-z][\w-]*){0,2})`
	articleGroup = `(?:a|an|the)[ \t]+`
)

// DefaultKeywords is the research vocabulary highlighted in every section.
var DefaultKeywords = []string{
	"significant", "results", "found", "shows", "demonstrates", "concludes",
	"analysis", "study", "research", "experiment", "methodology", "data",
	"evidence", "findings", "conclusion", "implications", "suggests", "indicates",
	"hypothesis", "objective", "purpose", "framework", "approach", "limitation",
}

// DefaultConcepts are templates whose first group is the concept phrase.
// Trigger words are case-sensitive.
var DefaultConcepts = []string{
	`\bdefined as[ \t]+(?:` + articleGroup + `)?` + phraseWords,
	`\bproposed[ \t]+` + articleGroup + phraseWords,
	`\bintroduce[sd]?[ \t]+` + articleGroup + phraseWords,
	`\bknown as[ \t]+(?:` + articleGroup + `)?` + phraseWords,
	`\bcalled[ \t]+(?:` + articleGroup + `)?` + phraseWords,
	`\bkey[ \t]+` + phraseWords,
}

var markerPattern = regexp.MustCompile(`(?s)<span class="(?:highlight|concept)">(.*?)</span>`)

var articles = map[string]bool{"a": true, "an": true, "the": true}

// Highlighter wraps keywords and concept phrases in presentation markers.
// It is immutable and safe for concurrent use.
type Highlighter struct {
	keywords *regexp.Regexp
	concepts []*regexp.Regexp
}

// New compiles a Highlighter. Keywords are quoted and matched on word
// boundaries, case-insensitively.
func New(keywords, concepts []string) (*Highlighter, error) {
	h := &Highlighter{}
	if len(keywords) > 0 {
		quoted := make([]string, len(keywords))
		for i, k := range keywords {
			quoted[i] = regexp.QuoteMeta(k)
		}
		re, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
		if err != nil {
			return nil, err
		}
		h.keywords = re
	}
	for _, c := range concepts {
		re, err := regexp.Compile(c)
		if err != nil {
			return nil, err
		}
		h.concepts = append(h.concepts, re)
	}
	return h, nil
}

var defaultHighlighter = func() *Highlighter {
	h, err := New(DefaultKeywords, DefaultConcepts)
	if err != nil {
		panic(err)
	}
	return h
}()

// Default returns the shared Highlighter for DefaultKeywords and
// DefaultConcepts.
func Default() *Highlighter {
	return defaultHighlighter
}

// Highlight marks concept phrases, then keywords outside them. Existing
// markers are removed first and every mark is computed against the plain
// text, so Highlight(Highlight(x)) == Highlight(x).
func (h *Highlighter) Highlight(text string) string {
	plain := Strip(text)
	marks := h.marks(plain)
	if len(marks) == 0 {
		return plain
	}
	var b strings.Builder
	last := 0
	for _, m := range marks {
		b.WriteString(plain[last:m.start])
		b.WriteString(m.open)
		b.WriteString(plain[m.start:m.end])
		b.WriteString(MarkerClose)
		last = m.end
	}
	b.WriteString(plain[last:])
	return b.String()
}

// Concepts returns the concept phrases found in text, in order of
// appearance.
func (h *Highlighter) Concepts(text string) []string {
	plain := Strip(text)
	var out []string
	for _, m := range h.marks(plain) {
		if m.open == ConceptOpen {
			out = append(out, plain[m.start:m.end])
		}
	}
	return out
}

// Strip removes highlight and concept markers, keeping their text.
func Strip(text string) string {
	for {
		next := markerPattern.ReplaceAllString(text, "$1")
		if next == text {
			return text
		}
		text = next
	}
}

type mark struct {
	start, end int
	open       string
}

// marks finds non-overlapping spans in plain, sorted by position. Concept
// templates claim text in template order; keywords fill what is left.
func (h *Highlighter) marks(plain string) []mark {
	var marks []mark
	for _, re := range h.concepts {
		for _, m := range re.FindAllStringSubmatchIndex(plain, -1) {
			start, end := m[2], m[3]
			if start < 0 || articles[strings.ToLower(plain[start:end])] {
				continue
			}
			if overlaps(marks, start, end) {
				continue
			}
			marks = append(marks, mark{start, end, ConceptOpen})
		}
	}
	if h.keywords != nil {
		for _, m := range h.keywords.FindAllStringSubmatchIndex(plain, -1) {
			if overlaps(marks, m[2], m[3]) {
				continue
			}
			marks = append(marks, mark{m[2], m[3], KeywordOpen})
		}
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].start < marks[j].start })
	return marks
}

func overlaps(marks []mark, start, end int) bool {
	for _, m := range marks {
		if start < m.end && m.start < end {
			return true
		}
	}
	return false
}
