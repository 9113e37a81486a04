package study

import (
	"regexp"
	"strings"

	"github.com/dgallion1/papersect/internal/sections"
)

// Flashcard is a front/back study pair derived from one section.
type Flashcard struct {
	Front   string       `json:"front"`
	Back    string       `json:"back"`
	Section sections.Key `json:"section"`
}

type cardTemplate struct {
	key       sections.Key
	front     string
	sentences int
}

var cardTemplates = []cardTemplate{
	{sections.Abstract, "What is this paper about?", 2},
	{sections.Methodology, "How was the study conducted?", 2},
	{sections.Findings, "What are the key findings?", 3},
	{sections.Limitations, "What limitations do the authors acknowledge?", 2},
}

var definitionPattern = regexp.MustCompile(`\b([A-Z][\w-]*(?:[ \t]+[\w-]+){0,4}?)[ \t]+(?:is|are)[ \t]+defined[ \t]+as[ \t]+([^.\n]+)`)

// GenerateFlashcards builds one summary card per found content section,
// followed by definition cards for "X is defined as Y" statements.
func GenerateFlashcards(s sections.Sections) []Flashcard {
	var cards []Flashcard
	for _, tmpl := range cardTemplates {
		if !s.Found(tmpl.key) {
			continue
		}
		back := firstSentences(body(s.Get(tmpl.key)), tmpl.sentences)
		if back == "" {
			continue
		}
		cards = append(cards, Flashcard{Front: tmpl.front, Back: back, Section: tmpl.key})
	}

	seen := make(map[string]bool)
	for _, tmpl := range cardTemplates {
		if !s.Found(tmpl.key) {
			continue
		}
		for _, m := range definitionPattern.FindAllStringSubmatch(s.Get(tmpl.key), -1) {
			term := strings.TrimSpace(m[1])
			if seen[term] {
				continue
			}
			seen[term] = true
			cards = append(cards, Flashcard{
				Front:   "Define: " + term,
				Back:    strings.TrimSpace(m[2]),
				Section: tmpl.key,
			})
		}
	}
	return cards
}
