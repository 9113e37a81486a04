// Package report renders extracted sections as a downloadable plain-text
// summary.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/papersect/internal/sections"
)

// Heading is the first line of every report.
const Heading = "Research Paper Summary"

var blocks = []struct {
	label string
	key   sections.Key
}{
	{"Abstract", sections.Abstract},
	{"Key Findings", sections.Findings},
	{"Methodology", sections.Methodology},
	{"Limitations", sections.Limitations},
	{"References", sections.References},
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]`)

// Build renders the fixed report template: heading, optional title line,
// one block per section and a numbered list of questions.
func Build(title string, s sections.Sections, questions []string) string {
	var sb strings.Builder
	sb.WriteString(Heading)
	sb.WriteString("\n\n")
	if t := strings.TrimSpace(title); t != "" {
		sb.WriteString("Title: " + t + "\n\n")
	}
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(b.label + ":\n")
		sb.WriteString(s.Get(b.key))
	}
	if len(questions) > 0 {
		sb.WriteString("\n\nResearch Questions:\n")
		for i, q := range questions {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
		}
	}
	return sb.String()
}

// Filename derives the download name from a paper title.
func Filename(title string) string {
	name := unsafeChars.ReplaceAllString(strings.ToLower(title), "_")
	if strings.Trim(name, "_") == "" {
		name = "paper"
	}
	return name + "_summary.txt"
}
