package a11y

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/runenames"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// isEmojiRune reports whether a code point sits in the supplementary
// Unicode planes, where the emoji blocks live. BMP text is never
// wrapped.
func isEmojiRune(r rune) bool {
	return r > 0xFFFF
}

// fixEmoji wraps bare emoji in text nodes inside accessible inline
// containers: <span role="img" aria-label="..."> with the code point's
// canonical Unicode name title-cased. Surrounding text is preserved as
// sibling text nodes. Text already inside such a container is skipped,
// which keeps a second pass from re-wrapping.
func (e *Engine) fixEmoji(doc *htmldoc.Document) []Fix {
	var fixes []Fix

	textNodes := htmldoc.FindAll(doc.Body(), func(n *html.Node) bool {
		if n.Type != html.TextNode {
			return false
		}
		if htmldoc.IsElement(n.Parent, "script", "style") {
			return false
		}
		if insideEmojiSpan(n) {
			return false
		}
		return strings.ContainsFunc(n.Data, isEmojiRune)
	})

	for _, textNode := range textNodes {
		parent := textNode.Parent
		var pending strings.Builder
		flush := func() {
			if pending.Len() > 0 {
				parent.InsertBefore(htmldoc.NewText(pending.String()), textNode)
				pending.Reset()
			}
		}

		for _, r := range textNode.Data {
			if !isEmojiRune(r) {
				pending.WriteRune(r)
				continue
			}
			flush()
			label := e.emojiLabel(r)
			span := htmldoc.NewElement("span", "role", "img", "aria-label", label)
			span.AppendChild(htmldoc.NewText(string(r)))
			parent.InsertBefore(span, textNode)
			fixes = append(fixes, fixf("Wrapped emoji %q with accessible label %q", string(r), label))
		}
		flush()
		parent.RemoveChild(textNode)
	}
	return fixes
}

// emojiLabel derives an aria-label from the rune's canonical Unicode
// name.
func (e *Engine) emojiLabel(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return "Emoji"
	}
	return e.titleCaser.String(strings.ToLower(name))
}

// insideEmojiSpan reports whether a text node already sits in an
// accessible emoji container.
func insideEmojiSpan(n *html.Node) bool {
	p := n.Parent
	return htmldoc.IsElement(p, "span") &&
		htmldoc.GetAttr(p, "role") == "img" &&
		htmldoc.HasAttr(p, "aria-label")
}
