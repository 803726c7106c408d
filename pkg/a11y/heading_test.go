package a11y

import (
	"testing"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

func headingTags(t *testing.T, doc *htmldoc.Document) []string {
	t.Helper()
	var tags []string
	for _, h := range headingNodes(doc) {
		tags = append(tags, h.Data)
	}
	return tags
}

func TestFixHeadings_FirstHeadingRaised(t *testing.T) {
	doc := parseDoc(t, `<body><h4>Title</h4><h3>Sub</h3></body>`)
	fixes := defaultEngine().fixHeadings(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}
	tags := headingTags(t, doc)
	if tags[0] != "h2" || tags[1] != "h3" {
		t.Errorf("expected [h2 h3], got %v", tags)
	}
}

func TestFixHeadings_GapDemoted(t *testing.T) {
	doc := parseDoc(t, `<body><h2>A</h2><h5>B</h5><h3>C</h3></body>`)
	defaultEngine().fixHeadings(doc)
	tags := headingTags(t, doc)
	// h5 closes the gap to h3; the following h3 is a legal decrease.
	if tags[0] != "h2" || tags[1] != "h3" || tags[2] != "h3" {
		t.Errorf("expected [h2 h3 h3], got %v", tags)
	}
}

func TestFixHeadings_DecreaseLeftAlone(t *testing.T) {
	doc := parseDoc(t, `<body><h2>A</h2><h3>B</h3><h2>C</h2></body>`)
	if fixes := defaultEngine().fixHeadings(doc); len(fixes) != 0 {
		t.Errorf("expected no fixes for a legal outline, got %d", len(fixes))
	}
}

func TestFixHeadings_SynthesizedFromTitle(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Week 3 Notes</title></head><body><p>x</p></body></html>`)
	fixes := defaultEngine().fixHeadings(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}
	headings := headingNodes(doc)
	if len(headings) != 1 || headings[0].Data != "h2" {
		t.Fatalf("expected one synthesized h2, got %v", headingTags(t, doc))
	}
	if got := htmldoc.Text(headings[0]); got != "Week 3 Notes" {
		t.Errorf("expected title text, got %q", got)
	}
	if doc.Body().FirstChild != headings[0] {
		t.Error("synthesized heading must be the first element of the content container")
	}
}

func TestFixHeadings_SynthesizedFallback(t *testing.T) {
	doc := parseDoc(t, `<body><p>x</p></body>`)
	defaultEngine().fixHeadings(doc)
	if got := htmldoc.Text(headingNodes(doc)[0]); got != "Document" {
		t.Errorf("expected fallback heading text, got %q", got)
	}
}

func TestFixHeadings_SynthesizedIntoMain(t *testing.T) {
	doc := parseDoc(t, `<body><nav>menu</nav><main><p>x</p></main></body>`)
	defaultEngine().fixHeadings(doc)
	h := headingNodes(doc)[0]
	if !htmldoc.IsElement(h.Parent, "main") {
		t.Errorf("expected heading inside <main>, got parent <%s>", h.Parent.Data)
	}
}

func TestAuditHeadings(t *testing.T) {
	var res Result
	defaultEngine().auditHeadings(parseDoc(t, `<body><h4>A</h4><h6>B</h6></body>`), &res)
	if len(res.Technical) != 2 {
		t.Fatalf("expected 2 issues (deep start, level skip), got %d: %+v", len(res.Technical), res.Technical)
	}

	res = Result{}
	defaultEngine().auditHeadings(parseDoc(t, `<body><p>no headings</p></body>`), &res)
	if len(res.Technical) != 1 {
		t.Errorf("expected 1 issue for a heading-less document, got %d", len(res.Technical))
	}
}
