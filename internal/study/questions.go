// Package study derives research questions and flashcards from extracted
// paper sections.
package study

import (
	"fmt"

	"github.com/dgallion1/papersect/internal/sections"
)

// GenerateQuestions derives research questions from s. The order is fixed:
// theoretical framework, methodology, statistics, limitations, closing.
// Section-specific groups appear only when their section was found.
func GenerateQuestions(s sections.Sections) []string {
	domain := domainTerm(s)
	field := orDefault(domain, "the field")

	questions := []string{
		fmt.Sprintf("What theoretical framework underpins this research on %s?", orDefault(domain, "the domain")),
		fmt.Sprintf("How does this work build on or challenge existing theories in %s?", field),
	}

	if s.Found(sections.Methodology) {
		method := "this approach"
		if terms := ExtractTerms(body(s.Methodology)); len(terms) > 0 {
			method = terms[0]
		}
		questions = append(questions,
			fmt.Sprintf("Why was %s chosen over alternative methods?", method),
			"What potential biases could the data collection or analysis introduce?",
			fmt.Sprintf("How could the methodology be replicated or adapted for other problems in %s?", field),
		)
	}

	if s.Found(sections.Findings) && HasStatistics(s.Findings) {
		questions = append(questions,
			"How robust are the reported statistics, and would they hold with a larger or different sample?",
			"What effect sizes and confidence intervals accompany the reported significance levels?",
		)
	}

	if s.Found(sections.Limitations) {
		questions = append(questions,
			fmt.Sprintf("How might future research on %s address the stated limitations?", field),
			"To what extent do the limitations affect the generalizability of the findings?",
		)
	}

	return append(questions,
		fmt.Sprintf("What practical implications do these findings have for %s?", field),
		fmt.Sprintf("What open questions remain for future work in %s?", field),
	)
}

// domainTerm picks the first term of the abstract, then of the other
// content sections. References are skipped: they are mostly author names.
func domainTerm(s sections.Sections) string {
	for _, k := range []sections.Key{sections.Abstract, sections.Findings, sections.Methodology, sections.Limitations} {
		if !s.Found(k) {
			continue
		}
		if terms := ExtractTerms(body(s.Get(k))); len(terms) > 0 {
			return terms[0]
		}
	}
	return ""
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
