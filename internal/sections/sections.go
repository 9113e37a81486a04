package sections

import "errors"

// Key identifies one of the fixed paper sections.
type Key string

const (
	Abstract    Key = "abstract"
	Methodology Key = "methodology"
	Findings    Key = "findings"
	Limitations Key = "limitations"
	References  Key = "references"
)

// Keys lists every section key in table order.
var Keys = []Key{Abstract, Methodology, Findings, Limitations, References}

// Primary sections decide whether a document is a paper at all.
var Primary = []Key{Abstract, Methodology, Findings}

var (
	// ErrNoContentDetected means no primary section could be found.
	ErrNoContentDetected = errors.New("could not identify research paper content")

	// ErrUnsupportedContentType tells the caller to route the input to the
	// linear segmenter instead of the DOM extractor.
	ErrUnsupportedContentType = errors.New("content type not supported by dom extraction")
)

// Sections is the extraction result. Every field is always populated,
// with a placeholder when the section was not found.
type Sections struct {
	Abstract    string `json:"abstract"`
	Methodology string `json:"methodology"`
	Findings    string `json:"findings"`
	Limitations string `json:"limitations"`
	References  string `json:"references"`
}

// Get returns the text stored for k.
func (s Sections) Get(k Key) string {
	switch k {
	case Abstract:
		return s.Abstract
	case Methodology:
		return s.Methodology
	case Findings:
		return s.Findings
	case Limitations:
		return s.Limitations
	case References:
		return s.References
	}
	return ""
}

// With returns a copy of s with k set to text.
func (s Sections) With(k Key, text string) Sections {
	switch k {
	case Abstract:
		s.Abstract = text
	case Methodology:
		s.Methodology = text
	case Findings:
		s.Findings = text
	case Limitations:
		s.Limitations = text
	case References:
		s.References = text
	}
	return s
}

// Found reports whether k holds real content rather than a placeholder.
func (s Sections) Found(k Key) bool {
	v := s.Get(k)
	return v != "" && !IsPlaceholder(v)
}

// AnyPrimary reports whether at least one primary section was found.
func (s Sections) AnyPrimary() bool {
	for _, k := range Primary {
		if s.Found(k) {
			return true
		}
	}
	return false
}

// Fill returns s with every empty section replaced by its placeholder.
func (s Sections) Fill(p Placeholders) Sections {
	for _, k := range Keys {
		if s.Get(k) == "" {
			s = s.With(k, p[k])
		}
	}
	return s
}

// Placeholders maps each key to the text used when the section is missing.
type Placeholders map[Key]string

// LinePlaceholders are used by the linear segmenter.
var LinePlaceholders = Placeholders{
	Abstract:    "No abstract found",
	Methodology: "No methodology found",
	Findings:    "No findings found",
	Limitations: "No limitations found",
	References:  "No references found",
}

// DocumentPlaceholders are used by the DOM extractor.
var DocumentPlaceholders = Placeholders{
	Abstract:    "No abstract found",
	Methodology: "No methodology section found",
	Findings:    "No findings/results section found",
	Limitations: "No limitations section found",
	References:  "No references found",
}

var placeholderSet = func() map[string]bool {
	set := make(map[string]bool)
	for _, p := range []Placeholders{LinePlaceholders, DocumentPlaceholders} {
		for _, v := range p {
			set[v] = true
		}
	}
	return set
}()

// IsPlaceholder reports whether text is one of the known placeholders.
func IsPlaceholder(text string) bool {
	return placeholderSet[text]
}
