package a11y

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// styleDecl is one declaration of an inline style attribute, kept in a
// slice so rewriting the attribute preserves the author's ordering.
type styleDecl struct {
	property string
	value    string
}

// parseStyleDecls splits a style attribute into ordered declarations.
func parseStyleDecls(styleAttr string) []styleDecl {
	var decls []styleDecl
	for _, raw := range strings.Split(styleAttr, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			continue
		}
		decls = append(decls, styleDecl{
			property: strings.TrimSpace(strings.ToLower(parts[0])),
			value:    strings.TrimSpace(parts[1]),
		})
	}
	return decls
}

// joinStyleDecls renders declarations back into attribute form.
func joinStyleDecls(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.property+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// getStyleDecl returns the node's own declared value for a property,
// without cascading to ancestors.
func getStyleDecl(n *html.Node, property string) (string, bool) {
	for _, d := range parseStyleDecls(htmldoc.GetAttr(n, "style")) {
		if d.property == property {
			return d.value, true
		}
	}
	return "", false
}

// setStyleDecl sets a property in the node's style attribute, replacing
// an existing declaration in place or appending a new one.
func setStyleDecl(n *html.Node, property, value string) {
	decls := parseStyleDecls(htmldoc.GetAttr(n, "style"))
	replaced := false
	for i := range decls {
		if decls[i].property == property {
			decls[i].value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, styleDecl{property: property, value: value})
	}
	htmldoc.SetAttr(n, "style", joinStyleDecls(decls))
}
