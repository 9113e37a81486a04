package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Content types the parsers produce.
const (
	TypeHTML     = "text/html"
	TypeMarkdown = "text/markdown"
	TypePDF      = "application/pdf"
	TypeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeText     = "text/plain"
)

// Document is a parsed paper ready for section extraction.
// Structured sources carry a DOM Root; linear sources carry Lines.
type Document struct {
	Title       string     // Paper title (from <title>, metadata or filename)
	ContentType string     // Media type of the source
	Root        *html.Node // DOM tree (nil for linear sources)
	Lines       []string   // Page-ordered text lines (nil for DOM sources)
	Pages       int        // Number of source pages (0 if N/A)
}

// IsPDF reports whether ct names a PDF rendering.
func IsPDF(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "pdf")
}

// HasDOM reports whether the document can go through DOM extraction.
func (d *Document) HasDOM() bool {
	return d != nil && d.Root != nil && !IsPDF(d.ContentType)
}

// TextContent returns the concatenated text of n and its descendants,
// trimmed of surrounding whitespace.
func TextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether n's class list contains class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
