package a11y

import (
	"strings"
	"testing"

	"github.com/accessibly/remedia/pkg/css"
	"github.com/accessibly/remedia/pkg/htmldoc"
)

func TestFixContrast_WhiteOnWhite(t *testing.T) {
	doc := parseDoc(t, `<body><p style="color: #ffffff">invisible</p></body>`)
	fixes := defaultEngine().fixContrast(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}

	p := htmldoc.Elements(doc.Root, "p")[0]
	declared, _ := getStyleDecl(p, "color")
	fg, ok := css.ParseColor(declared)
	if !ok {
		t.Fatalf("corrected color %q does not parse", declared)
	}
	bg := css.Color{R: 255, G: 255, B: 255}
	if ratio := css.ContrastRatio(fg, bg); ratio < 4.5 {
		t.Errorf("corrected color %s has ratio %.2f, expected >= 4.5", declared, ratio)
	}
}

func TestFixContrast_InheritedBackground(t *testing.T) {
	doc := parseDoc(t, `<body><div style="background-color: #000000"><p style="color: #222222">dark</p></div></body>`)
	fixes := defaultEngine().fixContrast(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}
	p := htmldoc.Elements(doc.Root, "p")[0]
	declared, _ := getStyleDecl(p, "color")
	fg, _ := css.ParseColor(declared)
	if ratio := css.ContrastRatio(fg, css.Color{}); ratio < 4.5 {
		t.Errorf("corrected color %s has ratio %.2f against black, expected >= 4.5", declared, ratio)
	}
}

func TestFixContrast_CompliantUntouched(t *testing.T) {
	doc := parseDoc(t, `<body><p>plain black on white</p></body>`)
	if fixes := defaultEngine().fixContrast(doc); len(fixes) != 0 {
		t.Errorf("expected no fixes, got %d", len(fixes))
	}
}

func TestFixContrast_UnparseableSkipped(t *testing.T) {
	doc := parseDoc(t, `<body><p style="color: rgb(1,2,3)">x</p><p style="color: transparent">y</p></body>`)
	if fixes := defaultEngine().fixContrast(doc); len(fixes) != 0 {
		t.Errorf("unparseable colors must be skipped, got %d fixes", len(fixes))
	}
}

func TestFixContrast_CodeTheme(t *testing.T) {
	doc := parseDoc(t, `<body><pre style="color: #777777">x := 1</pre></body>`)
	fixes := defaultEngine().fixContrast(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}
	pre := htmldoc.Elements(doc.Root, "pre")[0]
	if v, _ := getStyleDecl(pre, "color"); v != "#d4d4d4" {
		t.Errorf("expected theme foreground, got %q", v)
	}
	if v, _ := getStyleDecl(pre, "background-color"); v != "#1e1e1e" {
		t.Errorf("expected theme background, got %q", v)
	}
}

func TestAuditContrast_LargeTextExemption(t *testing.T) {
	// #767676 on white is about 4.54:1 and passes everywhere; #949494 is
	// about 3.0:1 and passes only where the large-text exemption holds.
	source := `<body>
<p style="color: #949494">small gray</p>
<p style="color: #949494; font-size: 24px">large gray</p>
</body>`
	var res Result
	defaultEngine().auditContrast(parseDoc(t, source), &res)
	if len(res.Technical) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(res.Technical), res.Technical)
	}
	if !strings.Contains(res.Technical[0].Location, "small gray") {
		t.Errorf("expected the small-text paragraph flagged, got %s", res.Technical[0].Location)
	}
}

func TestAuditContrast_BoldLowersThreshold(t *testing.T) {
	source := `<body><p style="color: #949494; font-size: 18px; font-weight: bold">bold gray</p></body>`
	var res Result
	defaultEngine().auditContrast(parseDoc(t, source), &res)
	if len(res.Technical) != 0 {
		t.Errorf("18px bold text qualifies for the 3.0:1 exemption, got %+v", res.Technical)
	}
}

func TestIsBoldContext(t *testing.T) {
	doc := parseDoc(t, `<body><h2>h</h2><strong>s</strong><p style="font-weight: bold">b</p><p>n</p></body>`)
	body := doc.Body()
	for _, tag := range []string{"h2", "strong"} {
		if !isBoldContext(htmldoc.Elements(body, tag)[0]) {
			t.Errorf("<%s> must count as bold", tag)
		}
	}
	paragraphs := htmldoc.Elements(body, "p")
	if !isBoldContext(paragraphs[0]) {
		t.Error("font-weight: bold must count as bold")
	}
	if isBoldContext(paragraphs[1]) {
		t.Error("plain paragraph must not count as bold")
	}
}
