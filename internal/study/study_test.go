package study

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/papersect/internal/sections"
)

func TestExtractTerms(t *testing.T) {
	got := ExtractTerms("We used Support Vector Machines (SVM) and The Random Forest with SVMs, again SVM.")
	assert.Equal(t, []string{"Support Vector Machines", "SVM", "Random Forest", "SVMs"}, got)
}

func TestExtractTerms_AbbreviationInsidePhrase(t *testing.T) {
	got := ExtractTerms("Data came from NASA Goddard Center.")
	assert.Equal(t, []string{"NASA Goddard Center"}, got)
}

func TestHasStatistics(t *testing.T) {
	assert.True(t, HasStatistics("accuracy improved by 12.5%"))
	assert.True(t, HasStatistics("significant (p < 0.05)"))
	assert.True(t, HasStatistics("p=.001"))
	assert.False(t, HasStatistics("no numbers here"))
}

func TestGenerateQuestions_MethodologyTermInterpolated(t *testing.T) {
	s := sections.Sections{
		Methodology: "We used Support Vector Machines (SVM) for classification.",
	}.Fill(sections.LinePlaceholders)

	qs := GenerateQuestions(s)
	joined := strings.Join(qs, "\n")
	assert.True(t,
		strings.Contains(joined, "Support Vector Machines") || strings.Contains(joined, "SVM"),
		"expected a methodology term in %q", joined)
	assert.Contains(t, qs, "Why was Support Vector Machines chosen over alternative methods?")
}

func TestGenerateQuestions_GenericFallback(t *testing.T) {
	s := sections.Sections{Abstract: "we look at things."}.Fill(sections.LinePlaceholders)

	qs := GenerateQuestions(s)
	assert.Equal(t, []string{
		"What theoretical framework underpins this research on the domain?",
		"How does this work build on or challenge existing theories in the field?",
		"What practical implications do these findings have for the field?",
		"What open questions remain for future work in the field?",
	}, qs)
}

func TestGenerateQuestions_OrderAndConditions(t *testing.T) {
	s := sections.Sections{
		Abstract:    "Abstract\nWe examine Urban Heat Islands in cities.",
		Methodology: "Methodology\nSatellite imagery was classified.",
		Findings:    "Results\nTemperatures rose 3.2% (p < 0.01).",
		Limitations: "Limitations\nOnly one summer was observed.",
	}.Fill(sections.LinePlaceholders)

	qs := GenerateQuestions(s)
	require.Len(t, qs, 11)
	assert.Equal(t, "What theoretical framework underpins this research on Urban Heat Islands?", qs[0])
	assert.Equal(t, "Why was this approach chosen over alternative methods?", qs[2])
	assert.Contains(t, qs[5], "reported statistics")
	assert.Contains(t, qs[7], "stated limitations")
	assert.Equal(t, "What open questions remain for future work in Urban Heat Islands?", qs[10])
}

func TestGenerateQuestions_NoStatisticsGroupWithoutNumbers(t *testing.T) {
	s := sections.Sections{Findings: "Effects were large."}.Fill(sections.LinePlaceholders)
	for _, q := range GenerateQuestions(s) {
		assert.NotContains(t, q, "statistics")
	}
}

func TestGenerateQuestions_Deterministic(t *testing.T) {
	s := sections.Sections{
		Abstract:    "Deep Learning for Protein Folding.",
		Methodology: "We trained CNN models.",
	}.Fill(sections.DocumentPlaceholders)
	assert.Equal(t, GenerateQuestions(s), GenerateQuestions(s))
}

func TestGenerateFlashcards(t *testing.T) {
	s := sections.Sections{
		Abstract:    "Abstract\nWe study sleep. Sleep matters. A third sentence.",
		Findings:    "Results\nResilience is defined as recovery after stress. It rose.",
		Methodology: "No methodology found",
	}.Fill(sections.LinePlaceholders)

	cards := GenerateFlashcards(s)
	require.Len(t, cards, 3)

	assert.Equal(t, Flashcard{Front: "What is this paper about?", Back: "We study sleep. Sleep matters.", Section: sections.Abstract}, cards[0])
	assert.Equal(t, sections.Findings, cards[1].Section)
	assert.Equal(t, "Resilience is defined as recovery after stress. It rose.", cards[1].Back)
	assert.Equal(t, Flashcard{Front: "Define: Resilience", Back: "recovery after stress", Section: sections.Findings}, cards[2])
}

func TestGenerateFlashcards_NothingFound(t *testing.T) {
	assert.Empty(t, GenerateFlashcards(sections.Sections{}.Fill(sections.LinePlaceholders)))
}

func TestGenerateQuestions_DocumentSectionKeepsFirstSentence(t *testing.T) {
	s := sections.Sections{
		Methodology: "We used SVM methods.\nData were split 80/20.",
	}.Fill(sections.DocumentPlaceholders)

	qs := GenerateQuestions(s)
	assert.Contains(t, qs, "Why was SVM chosen over alternative methods?")
	assert.Equal(t, "What theoretical framework underpins this research on SVM?", qs[0])

	cards := GenerateFlashcards(s)
	require.Len(t, cards, 1)
	assert.Equal(t, "We used SVM methods. Data were split 80/20.", cards[0].Back)
}

func TestBody(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Methods\nWe sampled soil.", "We sampled soil."},
		{"2. Results\nYield rose.", "Yield rose."},
		{"We used SVM methods.\nData were split.", "We used SVM methods.\nData were split."},
		{"Results were mixed overall and hard to interpret\nMore text.", "Results were mixed overall and hard to interpret\nMore text."},
		{"Single line only", "Single line only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, body(tt.in), tt.in)
	}
}
