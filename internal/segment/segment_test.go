package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgallion1/papersect/internal/sections"
)

var scenario = []string{
	"Introduction",
	"We study X.",
	"Methodology",
	"We used Y.",
	"Results",
	"We found Z significant.",
}

func TestExtract_ScenarioKeepsTriggerLines(t *testing.T) {
	got := Extract(scenario, sections.LineKeywords)

	assert.Equal(t, "Introduction\nWe study X.", got.Abstract)
	assert.Equal(t, "Methodology\nWe used Y.", got.Methodology)
	assert.Equal(t, "Results\nWe found Z significant.", got.Findings)
	assert.Equal(t, "No limitations found", got.Limitations)
	assert.Equal(t, "No references found", got.References)
}

func TestExtract_ScenarioWithoutTriggerLines(t *testing.T) {
	s := New(sections.LineKeywords)
	s.KeepTriggerLines = false
	got := s.Extract(scenario)

	assert.Equal(t, "Introduction\nWe study X.", got.Abstract)
	assert.Equal(t, "We used Y.", got.Methodology)
	assert.Equal(t, "We found Z significant.", got.Findings)
}

func TestExtract_AbstractHeadingFollowedByLines(t *testing.T) {
	lines := []string{"Abstract", "Line one.", "", "Line two.", "Line three.", "2 Methods", "Survey."}

	s := New(sections.LineKeywords)
	s.KeepTriggerLines = false
	got := s.Extract(lines)
	assert.Equal(t, "Line one.\nLine two.\nLine three.", got.Abstract)
	assert.Equal(t, "Survey.", got.Methodology)

	got = Extract(lines, sections.LineKeywords)
	assert.Equal(t, "Abstract\nLine one.\nLine two.\nLine three.", got.Abstract)
}

func TestExtract_BootstrapCapturesUntaggedLines(t *testing.T) {
	lines := []string{"A Title", "Jane Doe", "University of Somewhere", "This paper explores X."}
	got := Extract(lines, sections.LineKeywords)

	assert.Equal(t, strings.Join(lines, "\n"), got.Abstract)
	for _, k := range []sections.Key{sections.Methodology, sections.Findings, sections.Limitations, sections.References} {
		assert.Equal(t, sections.LinePlaceholders[k], got.Get(k))
	}
}

func TestExtract_BootstrapWindowIsBounded(t *testing.T) {
	var lines []string
	for i := range 25 {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	got := Extract(lines, sections.LineKeywords)
	assert.Equal(t, strings.Join(lines[:DefaultBootstrapWindow], "\n"), got.Abstract)
}

func TestExtract_BootstrapStopsAfterFirstTrigger(t *testing.T) {
	lines := []string{"Preamble", "References", "[1] A.", "[2] B."}
	got := Extract(lines, sections.LineKeywords)

	assert.Equal(t, "Preamble", got.Abstract)
	assert.Equal(t, "References\n[1] A.\n[2] B.", got.References)
}

func TestExtract_TieBreakUsesTableOrder(t *testing.T) {
	lines := []string{"Abstract", "Short.", "Methods and Results", "Mixed content."}
	got := Extract(lines, sections.LineKeywords)

	assert.Equal(t, "Methods and Results\nMixed content.", got.Methodology)
	assert.Equal(t, "No findings found", got.Findings)
}

func TestExtract_SkipsBlankLinesUnderCursor(t *testing.T) {
	lines := []string{"Limitations", "", "   ", "Small sample.", "\t"}
	got := Extract(lines, sections.LineKeywords)
	assert.Equal(t, "Limitations\nSmall sample.", got.Limitations)
}

func TestExtract_EmptyInput(t *testing.T) {
	for _, in := range [][]string{nil, {}, SplitLines("")} {
		got := Extract(in, sections.LineKeywords)
		for _, k := range sections.Keys {
			assert.Equal(t, sections.LinePlaceholders[k], got.Get(k))
		}
	}
}

func TestExtract_StableUnderRetokenization(t *testing.T) {
	first := Extract(scenario, sections.LineKeywords)

	var parts []string
	for _, k := range sections.Keys {
		if first.Found(k) {
			parts = append(parts, first.Get(k))
		}
	}
	second := Extract(SplitLines(strings.Join(parts, "\n")), sections.LineKeywords)

	assert.Equal(t, first, second)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b", "c", ""}, SplitLines("a\r\nb\fc\n"))
}
