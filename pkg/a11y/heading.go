package a11y

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// minHeadingLevel is where a normalized document outline starts. Level 1
// is reserved for the page chrome of the hosting system, so content
// documents open at h2.
const minHeadingLevel = 2

// fixHeadings enforces a monotonic heading hierarchy. The first heading
// is forced up to h2 when deeper, skipped levels are demoted to one below
// their predecessor, and a document without any heading gets one
// synthesized from its title. Decreases in level are always legal and
// left alone.
func (e *Engine) fixHeadings(doc *htmldoc.Document) []Fix {
	var fixes []Fix

	headings := headingNodes(doc)
	if len(headings) == 0 {
		title := strings.TrimSpace(doc.Title())
		if title == "" {
			title = e.cfg.FallbackHeading
		}
		h := htmldoc.NewElement("h2")
		h.AppendChild(htmldoc.NewText(title))
		htmldoc.InsertFirst(contentContainer(doc), h)
		return []Fix{fixf("Added missing document heading %q", title)}
	}

	lastLevel := 0
	for i, h := range headings {
		level := htmldoc.HeadingLevel(h)
		if i == 0 {
			if level > minHeadingLevel {
				setHeadingLevel(h, minHeadingLevel)
				fixes = append(fixes, fixf("Raised first heading %q from h%d to h%d",
					truncate(htmldoc.Text(h), 40), level, minHeadingLevel))
				level = minHeadingLevel
			}
			lastLevel = level
			continue
		}
		if level > lastLevel+1 {
			corrected := lastLevel + 1
			setHeadingLevel(h, corrected)
			fixes = append(fixes, fixf("Demoted heading %q from h%d to h%d to close level gap",
				truncate(htmldoc.Text(h), 40), level, corrected))
			level = corrected
		}
		lastLevel = level
	}
	return fixes
}

// auditHeadings reports hierarchy problems without touching the tree.
func (e *Engine) auditHeadings(doc *htmldoc.Document, res *Result) {
	headings := headingNodes(doc)
	if len(headings) == 0 {
		res.Technical = append(res.Technical, Issue{
			Kind:     KindTechnical,
			Message:  "Document has no headings",
			Location: "body",
		})
		return
	}

	lastLevel := 0
	for i, h := range headings {
		level := htmldoc.HeadingLevel(h)
		loc := fmt.Sprintf("h%d %q", level, truncate(htmldoc.Text(h), 40))
		if i == 0 {
			if level > minHeadingLevel {
				res.Technical = append(res.Technical, Issue{
					Kind:     KindTechnical,
					Message:  fmt.Sprintf("First heading is h%d; content should start at h%d", level, minHeadingLevel),
					Location: loc,
				})
			}
			lastLevel = level
			continue
		}
		if level > lastLevel+1 {
			res.Technical = append(res.Technical, Issue{
				Kind:     KindTechnical,
				Message:  fmt.Sprintf("Heading level skips from h%d to h%d", lastLevel, level),
				Location: loc,
			})
		}
		lastLevel = level
	}
}

// headingNodes snapshots the document's headings in document order.
func headingNodes(doc *htmldoc.Document) []*html.Node {
	return htmldoc.Elements(doc.Root, "h1", "h2", "h3", "h4", "h5", "h6")
}

// contentContainer picks the element a synthesized heading belongs in:
// the main content region when present, otherwise the body.
func contentContainer(doc *htmldoc.Document) *html.Node {
	if main := htmldoc.FindFirst(doc.Root, func(n *html.Node) bool {
		return htmldoc.IsElement(n, "main") ||
			(n.Type == html.ElementNode && htmldoc.GetAttr(n, "role") == "main")
	}); main != nil {
		return main
	}
	return doc.Body()
}

func setHeadingLevel(h *html.Node, level int) {
	h.Data = fmt.Sprintf("h%d", level)
	h.DataAtom = 0
}
