// Package docextract locates paper sections in an HTML document by heading
// keywords, with container and reference-list fallbacks.
package docextract

import (
	"strings"

	"github.com/dgallion1/papersect/internal/document"
	"github.com/dgallion1/papersect/internal/sections"
	"golang.org/x/net/html"
)

// containerNames is the conventional class/id for each section's container.
var containerNames = map[sections.Key]string{
	sections.Abstract:    "abstract",
	sections.Methodology: "methodology",
	sections.Findings:    "results",
	sections.Limitations: "limitations",
}

// referenceContainers hold <li> bibliography entries.
var referenceContainers = []string{"references", "bibliography"}

// Extract pulls every section out of doc using table for heading search.
// PDF renderings and documents without a DOM are refused with
// sections.ErrUnsupportedContentType; documents without any primary section
// fail with sections.ErrNoContentDetected.
func Extract(doc *document.Document, table sections.KeywordTable) (sections.Sections, error) {
	if doc == nil || !doc.HasDOM() {
		return sections.Sections{}, sections.ErrUnsupportedContentType
	}
	root := doc.Root

	var out sections.Sections
	for _, k := range sections.Keys {
		var text string
		if k == sections.References {
			text = extractReferences(root, table.Triggers(k))
		} else {
			text = FindSection(root, table.Triggers(k))
			if text == "" {
				text = containerText(root, containerNames[k])
			}
		}
		out = out.With(k, text)
	}

	if out.Abstract == "" && out.Methodology == "" && out.Findings == "" {
		return sections.Sections{}, sections.ErrNoContentDetected
	}
	return out.Fill(sections.DocumentPlaceholders), nil
}

// FindSection returns the text between the first heading whose lower-cased
// text contains any keyword and the next heading-like sibling. It returns ""
// when no heading matches.
func FindSection(root *html.Node, keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	for _, h := range headings(root) {
		title := strings.ToLower(document.TextContent(h))
		if !sections.ContainsAny(title, keywords) {
			continue
		}
		var lines []string
		for el := nextElement(h); el != nil && !isHeading(el); el = nextElement(el) {
			if t := document.TextContent(el); t != "" {
				lines = append(lines, t)
			}
		}
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return ""
}

func extractReferences(root *html.Node, keywords []string) string {
	if text := FindSection(root, keywords); text != "" {
		return text
	}
	var items []string
	walk(root, func(n *html.Node) bool {
		if !isReferenceContainer(n) {
			return true
		}
		walk(n, func(li *html.Node) bool {
			if li.Data == "li" {
				if t := document.TextContent(li); t != "" {
					items = append(items, t)
				}
				return false
			}
			return true
		})
		return false
	})
	return strings.Join(items, "\n")
}

// containerText joins the text of elements with class name, falling back
// to elements with id name.
func containerText(root *html.Node, name string) string {
	if name == "" {
		return ""
	}
	if t := collectText(root, func(n *html.Node) bool { return document.HasClass(n, name) }); t != "" {
		return t
	}
	return collectText(root, func(n *html.Node) bool { return document.Attr(n, "id") == name })
}

func collectText(root *html.Node, match func(*html.Node) bool) string {
	var parts []string
	walk(root, func(n *html.Node) bool {
		if match(n) {
			if t := document.TextContent(n); t != "" {
				parts = append(parts, t)
			}
		}
		return true
	})
	return strings.Join(parts, "\n")
}

func isReferenceContainer(n *html.Node) bool {
	for _, name := range referenceContainers {
		if document.HasClass(n, name) || document.Attr(n, "id") == name {
			return true
		}
	}
	return false
}

// headings returns heading-like elements in document order.
func headings(root *html.Node) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if isHeading(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return document.HasClass(n, "section-title") || document.HasClass(n, "heading")
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// walk visits element nodes in document order. fn returning false skips
// the node's descendants.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if n.Type == html.ElementNode && !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
