package a11y

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// deprecatedTags lists presentational markup rewritten into styled
// modern equivalents. Word-export HTML is the usual source of these.
var deprecatedTags = []string{"font", "center", "strike", "u", "marquee", "blink", "big", "tt"}

// fixDeprecatedTags rewrites deprecated presentational elements in
// place, translating their visual intent into inline styles so the
// rendering survives the rename.
func (e *Engine) fixDeprecatedTags(doc *htmldoc.Document) []Fix {
	var fixes []Fix
	for _, n := range htmldoc.Elements(doc.Root, deprecatedTags...) {
		original := n.Data
		switch original {
		case "font":
			rename(n, "span")
			if color := htmldoc.GetAttr(n, "color"); color != "" {
				setStyleDecl(n, "color", color)
				htmldoc.RemoveAttr(n, "color")
			}
			if face := htmldoc.GetAttr(n, "face"); face != "" {
				setStyleDecl(n, "font-family", face)
				htmldoc.RemoveAttr(n, "face")
			}
			htmldoc.RemoveAttr(n, "size")
		case "center":
			rename(n, "div")
			setStyleDecl(n, "text-align", "center")
		case "strike":
			rename(n, "span")
			setStyleDecl(n, "text-decoration", "line-through")
		case "u":
			rename(n, "span")
			setStyleDecl(n, "text-decoration", "underline")
		case "big":
			rename(n, "span")
			setStyleDecl(n, "font-size", "larger")
		case "tt":
			rename(n, "span")
			setStyleDecl(n, "font-family", "monospace")
		case "marquee", "blink":
			// Motion effects are dropped outright, not restyled.
			rename(n, "span")
		}
		fixes = append(fixes, fixf("Rewrote deprecated <%s> as <%s>", original, n.Data))
	}
	return fixes
}

// auditDeprecatedTags reports deprecated presentational elements.
func (e *Engine) auditDeprecatedTags(doc *htmldoc.Document, res *Result) {
	for _, n := range htmldoc.Elements(doc.Root, deprecatedTags...) {
		res.Technical = append(res.Technical, Issue{
			Kind:     KindTechnical,
			Message:  fmt.Sprintf("Deprecated <%s> element", n.Data),
			Location: fmt.Sprintf("<%s> %q", n.Data, truncate(htmldoc.Text(n), 30)),
		})
	}
}

func rename(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = 0
}
