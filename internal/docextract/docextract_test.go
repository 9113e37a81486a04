package docextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/dgallion1/papersect/internal/document"
	"github.com/dgallion1/papersect/internal/sections"
)

func parseDoc(t *testing.T, src string) *document.Document {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return &document.Document{ContentType: document.TypeHTML, Root: root}
}

const fullPaper = `<html><head><title>A Paper</title></head><body>
<h1>A Paper</h1>
<h2>Abstract</h2>
<p>We study things.</p>
<h2>2. Materials and Methods</h2>
<p>We used a survey.</p>
<p>  Participants were adults.  </p>
<h2>3. Results</h2>
<p>Effects were large.</p>
<h2>4. Limitations</h2>
<p>Small sample.</p>
<h2>References</h2>
<p>[1] Smith 2020.</p>
<p>[2] Jones 2021.</p>
</body></html>`

func TestExtract_FullPaper(t *testing.T) {
	got, err := Extract(parseDoc(t, fullPaper), sections.DocumentKeywords)
	require.NoError(t, err)

	assert.Equal(t, "We study things.", got.Abstract)
	assert.Equal(t, "We used a survey.\nParticipants were adults.", got.Methodology)
	assert.Equal(t, "Effects were large.", got.Findings)
	assert.Equal(t, "Small sample.", got.Limitations)
	assert.Equal(t, "[1] Smith 2020.\n[2] Jones 2021.", got.References)
}

func TestExtract_StopsAtNextHeading(t *testing.T) {
	src := `<body>
<h2>Abstract</h2>
<p>First paragraph.</p>
<p>Second paragraph.</p>
<h2>1. Introduction</h2>
<p>Intro text.</p>
</body>`
	got, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	require.NoError(t, err)

	assert.Equal(t, "First paragraph.\nSecond paragraph.", got.Abstract)
	assert.Equal(t, "No methodology section found", got.Methodology)
	assert.Equal(t, "No findings/results section found", got.Findings)
	assert.Equal(t, "No limitations section found", got.Limitations)
	assert.Equal(t, "No references found", got.References)
}

func TestExtract_SectionTitleClassIsHeading(t *testing.T) {
	src := `<body>
<div class="section-title">Abstract</div>
<p>Body.</p>
<div class="section-title">Keywords</div>
<p>x, y</p>
</body>`
	got, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	require.NoError(t, err)
	assert.Equal(t, "Body.", got.Abstract)
}

func TestExtract_FirstMatchingHeadingWins(t *testing.T) {
	src := `<body>
<h2>Results overview</h2>
<p>Short.</p>
<h2>Detailed Results</h2>
<p>Much longer and better content.</p>
</body>`
	got, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	require.NoError(t, err)
	assert.Equal(t, "Short.", got.Findings)
}

func TestExtract_ContainerFallback(t *testing.T) {
	src := `<body>
<div class="abstract"><p>Class abstract.</p></div>
<section id="methodology">Id methodology.</section>
<div id="results">Id results.</div>
</body>`
	got, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	require.NoError(t, err)

	assert.Equal(t, "Class abstract.", got.Abstract)
	assert.Equal(t, "Id methodology.", got.Methodology)
	assert.Equal(t, "Id results.", got.Findings)
}

func TestExtract_ClassFallbackBeatsID(t *testing.T) {
	src := `<body>
<div id="abstract">By id.</div>
<div class="abstract">By class.</div>
</body>`
	got, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	require.NoError(t, err)
	assert.Equal(t, "By class.", got.Abstract)
}

func TestExtract_ReferenceListFallback(t *testing.T) {
	src := `<body>
<h2>Abstract</h2><p>Text.</p>
<ol class="references"><li>Ref one.</li><li> Ref two. </li></ol>
<div id="bibliography"><ul><li>Ref three.</li></ul></div>
</body>`
	got, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	require.NoError(t, err)
	assert.Equal(t, "Ref one.\nRef two.\nRef three.", got.References)
}

func TestExtract_NoPrimaryContent(t *testing.T) {
	src := `<body><h2>Limitations</h2><p>Only this.</p><h2>References</h2><p>[1]</p></body>`
	_, err := Extract(parseDoc(t, src), sections.DocumentKeywords)
	assert.ErrorIs(t, err, sections.ErrNoContentDetected)
}

func TestExtract_PDFUnsupported(t *testing.T) {
	doc := parseDoc(t, fullPaper)
	doc.ContentType = "application/pdf"

	_, err := Extract(doc, sections.DocumentKeywords)
	assert.ErrorIs(t, err, sections.ErrUnsupportedContentType)

	_, err = Extract(&document.Document{ContentType: document.TypeText, Lines: []string{"Abstract"}}, sections.DocumentKeywords)
	assert.ErrorIs(t, err, sections.ErrUnsupportedContentType)
}

func TestFindSection_NoMatch(t *testing.T) {
	doc := parseDoc(t, `<body><h2>Intro</h2><p>x</p></body>`)
	assert.Equal(t, "", FindSection(doc.Root, []string{"abstract"}))
	assert.Equal(t, "", FindSection(doc.Root, nil))
}
