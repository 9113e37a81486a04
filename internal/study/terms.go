package study

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/papersect/internal/sections"
)

var (
	phrasePattern = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)+\b`)
	abbrevPattern = regexp.MustCompile(`\b[A-Z]{2,}s?\b`)
	statPattern   = regexp.MustCompile(`\d+(?:\.\d+)?\s?%|\b[pP]\s*[<>=≤≥]\s*0?\.\d+`)

	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// leadWords are dropped from the front of capitalized phrases.
var leadWords = map[string]bool{
	"A": true, "An": true, "The": true, "This": true, "These": true, "That": true,
	"Those": true, "We": true, "Our": true, "In": true, "On": true, "For": true,
	"It": true, "Its": true, "Their": true, "Here": true, "However": true,
}

type span struct {
	start, end int
	text       string
}

// ExtractTerms returns capitalized multi-word phrases and all-caps
// abbreviations in order of first appearance, without duplicates.
func ExtractTerms(text string) []string {
	var spans []span
	for _, loc := range phrasePattern.FindAllStringIndex(text, -1) {
		words := strings.Fields(text[loc[0]:loc[1]])
		for len(words) > 0 && leadWords[words[0]] {
			words = words[1:]
		}
		if len(words) < 2 {
			continue
		}
		spans = append(spans, span{loc[0], loc[1], strings.Join(words, " ")})
	}
	for _, loc := range abbrevPattern.FindAllStringIndex(text, -1) {
		if covered(spans, loc[0], loc[1]) {
			continue
		}
		spans = append(spans, span{loc[0], loc[1], text[loc[0]:loc[1]]})
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	seen := make(map[string]bool)
	var out []string
	for _, s := range spans {
		if seen[s.text] {
			continue
		}
		seen[s.text] = true
		out = append(out, s.text)
	}
	return out
}

func covered(spans []span, start, end int) bool {
	for _, s := range spans {
		if start >= s.start && end <= s.end {
			return true
		}
	}
	return false
}

// HasStatistics reports whether text reports a percentage or p-value.
func HasStatistics(text string) bool {
	return statPattern.MatchString(text)
}

// body strips a leading heading line that only names the section. Linear
// extraction keeps trigger lines such as "Methods" or "2. Results"; DOM
// sections start with content, whose first line ends like a sentence.
func body(text string) string {
	first, rest, ok := strings.Cut(text, "\n")
	if !ok || !isHeadingLine(first) {
		return text
	}
	return strings.TrimSpace(rest)
}

func isHeadingLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || len(strings.Fields(line)) > 6 || strings.ContainsAny(line[len(line)-1:], ".!?") {
		return false
	}
	if _, hit := sections.LineKeywords.Match(line); hit {
		return true
	}
	_, hit := sections.DocumentKeywords.Match(line)
	return hit
}

// firstSentences returns up to n sentences of text with whitespace collapsed.
func firstSentences(text string, n int) string {
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
	found := sentencePattern.FindAllString(text, n)
	if len(found) == 0 {
		return text
	}
	for i := range found {
		found[i] = strings.TrimSpace(found[i])
	}
	return strings.Join(found, " ")
}
