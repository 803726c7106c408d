package css

import (
	"strings"

	"golang.org/x/net/html"
)

// Built-in defaults used when no ancestor declares the property.
const (
	DefaultColor      = "#000000"
	DefaultBackground = "#ffffff"
)

// Resolve returns the effective value of a CSS property for a node by
// searching its inline style and then walking the ancestor chain. For
// background-color, a `background` shorthand on the same node also
// satisfies the lookup. If nothing in the chain declares the property,
// a built-in default is returned: black for color, white for any
// background property.
//
// Resolve is a pure function over the tree; values are recomputed per
// query and never cached.
func Resolve(n *html.Node, property string) string {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		styleAttr := attrVal(cur, "style")
		if styleAttr == "" {
			continue
		}
		style := ParseInline(styleAttr)
		if value, ok := style.Get(property); ok {
			return value
		}
		if property == "background-color" {
			if shorthand, ok := style.Get("background"); ok {
				if token := BackgroundColorToken(shorthand); token != "" {
					return token
				}
			}
		}
	}

	if property == "color" {
		return DefaultColor
	}
	if strings.HasPrefix(property, "background") {
		return DefaultBackground
	}
	return ""
}

// attrVal fetches an attribute value without importing the document
// helpers, keeping this package dependent on x/net/html alone.
func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
