package a11y

import (
	"testing"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

func TestFixDeprecatedTags_Font(t *testing.T) {
	doc := parseDoc(t, `<body><font color="red" face="Arial" size="3">x</font></body>`)
	fixes := defaultEngine().fixDeprecatedTags(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}

	spans := htmldoc.Elements(doc.Root, "span")
	if len(spans) != 1 {
		t.Fatalf("expected font rewritten to span, got %d spans", len(spans))
	}
	span := spans[0]
	if v, _ := getStyleDecl(span, "color"); v != "red" {
		t.Errorf("expected color carried into style, got %q", v)
	}
	if v, _ := getStyleDecl(span, "font-family"); v != "Arial" {
		t.Errorf("expected face carried into style, got %q", v)
	}
	for _, attr := range []string{"color", "face", "size"} {
		if htmldoc.HasAttr(span, attr) {
			t.Errorf("presentational attribute %q must be removed", attr)
		}
	}
}

func TestFixDeprecatedTags_Rewrites(t *testing.T) {
	tests := []struct {
		source   string
		tag      string
		property string
		value    string
	}{
		{`<center>x</center>`, "div", "text-align", "center"},
		{`<strike>x</strike>`, "span", "text-decoration", "line-through"},
		{`<u>x</u>`, "span", "text-decoration", "underline"},
		{`<big>x</big>`, "span", "font-size", "larger"},
		{`<tt>x</tt>`, "span", "font-family", "monospace"},
	}
	engine := defaultEngine()
	for _, tc := range tests {
		doc := parseDoc(t, `<body>`+tc.source+`</body>`)
		engine.fixDeprecatedTags(doc)
		nodes := htmldoc.Elements(doc.Root, tc.tag)
		if len(nodes) != 1 {
			t.Fatalf("%s: expected one <%s>, got %d", tc.source, tc.tag, len(nodes))
		}
		if v, _ := getStyleDecl(nodes[0], tc.property); v != tc.value {
			t.Errorf("%s: expected %s: %s, got %q", tc.source, tc.property, tc.value, v)
		}
		if got := htmldoc.Text(nodes[0]); got != "x" {
			t.Errorf("%s: content must survive the rewrite, got %q", tc.source, got)
		}
	}
}

func TestFixDeprecatedTags_MotionDropped(t *testing.T) {
	doc := parseDoc(t, `<body><marquee>ticker</marquee></body>`)
	defaultEngine().fixDeprecatedTags(doc)
	span := htmldoc.Elements(doc.Root, "span")[0]
	if htmldoc.HasAttr(span, "style") {
		t.Error("marquee rewrite must not add styling")
	}
	if got := htmldoc.Text(span); got != "ticker" {
		t.Errorf("content must survive, got %q", got)
	}
}

func TestAuditDeprecatedTags(t *testing.T) {
	var res Result
	defaultEngine().auditDeprecatedTags(parseDoc(t, `<body><font>a</font><center>b</center><p>c</p></body>`), &res)
	if len(res.Technical) != 2 {
		t.Errorf("expected 2 issues, got %d: %+v", len(res.Technical), res.Technical)
	}
}
