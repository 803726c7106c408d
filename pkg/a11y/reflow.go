package a11y

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// viewportContent is the canonical responsive viewport declaration.
const viewportContent = "width=device-width, initial-scale=1"

var pxValueRe = regexp.MustCompile(`^(\d+)px$`)
var sizeValueRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)(px|pt|em|rem)$`)

// fixReflow converts fixed pixel widths to responsive widths, removes
// justified text, elevates unreadably small fonts, and guarantees a
// single viewport meta tag.
func (e *Engine) fixReflow(doc *htmldoc.Document) []Fix {
	var fixes []Fix

	styled := htmldoc.FindAll(doc.Root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && htmldoc.HasAttr(n, "style")
	})
	for _, n := range styled {
		fixes = append(fixes, e.fixElementStyle(n)...)
	}

	fixes = append(fixes, e.ensureViewport(doc)...)
	return fixes
}

// fixElementStyle rewrites one element's style declarations in place.
// Operating on parsed declarations rather than the raw attribute string
// means `max-width` and `min-width` can never be mistaken for `width`.
func (e *Engine) fixElementStyle(n *html.Node) []Fix {
	var fixes []Fix
	decls := parseStyleDecls(htmldoc.GetAttr(n, "style"))
	changed := false

	var out []styleDecl
	for _, d := range decls {
		switch d.property {
		case "width":
			if m := pxValueRe.FindStringSubmatch(d.value); m != nil {
				px, _ := strconv.Atoi(m[1])
				if px > e.cfg.MaxFixedWidthPx {
					out = append(out, styleDecl{property: "width", value: "100%"})
					if !hasDecl(decls, "max-width") {
						out = append(out, styleDecl{property: "max-width", value: d.value})
					}
					fixes = append(fixes, fixf("Converted fixed width %s on <%s> to responsive width", d.value, n.Data))
					changed = true
					continue
				}
			}
		case "text-align":
			if strings.EqualFold(d.value, "justify") {
				out = append(out, styleDecl{property: "text-align", value: "left"})
				fixes = append(fixes, fixf("Changed justified text on <%s> to left-aligned", n.Data))
				changed = true
				continue
			}
		case "font-size":
			if raised, ok := elevateFontSize(d.value); ok {
				out = append(out, styleDecl{property: "font-size", value: raised})
				fixes = append(fixes, fixf("Raised font size on <%s> from %s to %s", n.Data, d.value, raised))
				changed = true
				continue
			}
		}
		out = append(out, d)
	}

	if changed {
		htmldoc.SetAttr(n, "style", joinStyleDecls(out))
	}
	return fixes
}

func hasDecl(decls []styleDecl, property string) bool {
	for _, d := range decls {
		if d.property == property {
			return true
		}
	}
	return false
}

// elevateFontSize raises unreadably small declared sizes: <=9px becomes
// 12px, <=7pt becomes 9pt, <=0.6em/rem becomes 0.8 in the same unit.
func elevateFontSize(value string) (string, bool) {
	m := sizeValueRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if m == nil {
		return "", false
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	switch m[2] {
	case "px":
		if size <= 9 {
			return "12px", true
		}
	case "pt":
		if size <= 7 {
			return "9pt", true
		}
	case "em", "rem":
		if size <= 0.6 {
			return "0.8" + m[2], true
		}
	}
	return "", false
}

// ensureViewport guarantees exactly one viewport meta tag.
func (e *Engine) ensureViewport(doc *htmldoc.Document) []Fix {
	var fixes []Fix

	viewports := htmldoc.FindAll(doc.Root, func(n *html.Node) bool {
		return htmldoc.IsElement(n, "meta") && htmldoc.GetAttr(n, "name") == "viewport"
	})

	switch {
	case len(viewports) == 0:
		head := doc.Head()
		if head == nil {
			head = htmldoc.NewElement("head")
			if htmlNode := htmldoc.FindFirst(doc.Root, func(n *html.Node) bool {
				return htmldoc.IsElement(n, "html")
			}); htmlNode != nil {
				htmldoc.InsertFirst(htmlNode, head)
			} else {
				htmldoc.InsertFirst(doc.Root, head)
			}
		}
		head.AppendChild(htmldoc.NewElement("meta",
			"name", "viewport",
			"content", viewportContent))
		fixes = append(fixes, fixf("Added viewport meta tag"))
	case len(viewports) > 1:
		for _, extra := range viewports[1:] {
			extra.Parent.RemoveChild(extra)
		}
		fixes = append(fixes, fixf("Removed %d duplicate viewport meta tags", len(viewports)-1))
	}
	return fixes
}

// auditReflow reports reflow problems: oversized fixed widths, justified
// text, tiny fonts, and a missing viewport tag.
func (e *Engine) auditReflow(doc *htmldoc.Document, res *Result) {
	styled := htmldoc.FindAll(doc.Root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && htmldoc.HasAttr(n, "style")
	})
	for _, n := range styled {
		for _, d := range parseStyleDecls(htmldoc.GetAttr(n, "style")) {
			switch d.property {
			case "width":
				if m := pxValueRe.FindStringSubmatch(d.value); m != nil {
					if px, _ := strconv.Atoi(m[1]); px > e.cfg.MaxFixedWidthPx {
						res.Technical = append(res.Technical, Issue{
							Kind:     KindTechnical,
							Message:  "Fixed width " + d.value + " will overflow narrow viewports",
							Location: "<" + n.Data + ">",
						})
					}
				}
			case "text-align":
				if strings.EqualFold(d.value, "justify") {
					res.Technical = append(res.Technical, Issue{
						Kind:     KindTechnical,
						Message:  "Justified text is hard to read for low-vision and dyslexic users",
						Location: "<" + n.Data + ">",
					})
				}
			case "font-size":
				if _, ok := elevateFontSize(d.value); ok {
					res.Technical = append(res.Technical, Issue{
						Kind:     KindTechnical,
						Message:  "Font size " + d.value + " is below the readable minimum",
						Location: "<" + n.Data + ">",
					})
				}
			}
		}
	}

	hasViewport := htmldoc.FindFirst(doc.Root, func(n *html.Node) bool {
		return htmldoc.IsElement(n, "meta") && htmldoc.GetAttr(n, "name") == "viewport"
	}) != nil
	if !hasViewport {
		res.Technical = append(res.Technical, Issue{
			Kind:     KindTechnical,
			Message:  "Document has no viewport meta tag",
			Location: "head",
		})
	}
}
