package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/papersect/internal/document"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML pages.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &document.Document{
		Title:       trimExt(filename, ".html", ".htm"),
		ContentType: document.TypeHTML,
		Root:        root,
	}
	// Extract title from <title> tag if present.
	if title := findElementText(root, "title"); title != "" {
		doc.Title = title
	}
	return doc, nil
}

// findElementText returns the text of the first element named tag.
func findElementText(n *html.Node, tag string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		return document.TextContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findElementText(c, tag); t != "" {
			return t
		}
	}
	return ""
}
