package sections

import "strings"

// Entry binds a section to its trigger phrases.
type Entry struct {
	Key      Key
	Triggers []string
}

// KeywordTable is an ordered list of section triggers. Order matters: when a
// line matches several sections, the earliest entry wins.
type KeywordTable []Entry

// DocumentKeywords drive heading search in the DOM extractor.
var DocumentKeywords = KeywordTable{
	{Abstract, []string{"abstract"}},
	{Methodology, []string{"method", "methodology", "materials and methods", "experimental"}},
	{Findings, []string{"results", "findings", "discussion"}},
	{Limitations, []string{"limitation", "limitations", "future work"}},
	{References, []string{"references", "bibliography", "citations"}},
}

// LineKeywords drive the linear segmenter.
var LineKeywords = KeywordTable{
	{Abstract, []string{"abstract"}},
	{Methodology, []string{"methodology", "methods", "experimental procedure", "materials and methods"}},
	{Findings, []string{"results", "findings", "discussion"}},
	{Limitations, []string{"limitations", "future work", "constraints"}},
	{References, []string{"references", "bibliography", "works cited"}},
}

// Triggers returns the trigger phrases for k, or nil.
func (t KeywordTable) Triggers(k Key) []string {
	for _, e := range t {
		if e.Key == k {
			return e.Triggers
		}
	}
	return nil
}

// Match returns the first section in table order whose triggers appear in
// text. text is compared lower-cased.
func (t KeywordTable) Match(text string) (Key, bool) {
	lower := strings.ToLower(text)
	for _, e := range t {
		if ContainsAny(lower, e.Triggers) {
			return e.Key, true
		}
	}
	return "", false
}

// ContainsAny reports whether lower contains any of the phrases.
func ContainsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
