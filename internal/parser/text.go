package parser

import (
	"bufio"
	"io"

	"github.com/dgallion1/papersect/internal/document"
)

// TextParser handles plain text files. Each line is kept as-is so the
// segmenter sees the original line structure.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &document.Document{
		Title:       trimExt(filename, ".txt"),
		ContentType: document.TypeText,
		Lines:       lines,
	}, nil
}
