package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/papersect/internal/document"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// MarkdownParser renders Markdown to HTML with goldmark so headings and
// paragraphs go through the same DOM extraction as web pages.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rendered bytes.Buffer
	if err := goldmark.New().Convert(src, &rendered); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	root, err := html.Parse(&rendered)
	if err != nil {
		return nil, fmt.Errorf("parse rendered markdown: %w", err)
	}

	doc := &document.Document{
		Title:       trimExt(filename, ".md", ".markdown"),
		ContentType: document.TypeMarkdown,
		Root:        root,
	}
	if title := findElementText(root, "h1"); title != "" {
		doc.Title = title
	}
	return doc, nil
}
