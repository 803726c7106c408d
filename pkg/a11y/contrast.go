package a11y

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/css"
	"github.com/accessibly/remedia/pkg/htmldoc"
)

// fixContrast corrects foreground colors on text that fails the
// configured contrast target. The fixer always corrects toward the
// normal-text target regardless of font size; the auditor's large-text
// exemption is intentionally not applied here, so remediated documents
// end up stricter than the audit requires.
//
// Code blocks are handled separately: instead of nudging the existing
// color, the configured code theme palette is applied whole.
func (e *Engine) fixContrast(doc *htmldoc.Document) []Fix {
	var fixes []Fix
	for _, n := range textBearingElements(doc) {
		fg, bg, ok := resolvedColors(n)
		if !ok {
			continue
		}
		ratio := css.ContrastRatio(fg, bg)
		if ratio >= e.cfg.ContrastTarget {
			continue
		}

		if block := codeBlock(n); block != nil {
			themeFg, okFg := css.ParseColor(e.cfg.CodeTheme.Foreground)
			themeBg, okBg := css.ParseColor(e.cfg.CodeTheme.Background)
			if okFg && okBg {
				setStyleDecl(block, "color", themeFg.Hex())
				setStyleDecl(block, "background-color", themeBg.Hex())
				fixes = append(fixes, fixf("Applied code theme palette to <%s> (contrast was %.2f:1)", block.Data, ratio))
				continue
			}
		}

		adjusted := css.AdjustForeground(fg, bg, e.cfg.ContrastTarget)
		if adjusted == fg {
			// The fallback color is already in place; some backgrounds
			// (mid-luminance grays) cannot reach the target at all.
			continue
		}
		setStyleDecl(n, "color", adjusted.Hex())
		fixes = append(fixes, fixf("Changed text color on <%s> from %s to %s (contrast %.2f:1 -> %.2f:1)",
			n.Data, fg.Hex(), adjusted.Hex(), ratio, css.ContrastRatio(adjusted, bg)))
	}
	return fixes
}

// auditContrast reports contrast failures against the size-aware WCAG
// threshold: 4.5:1 for normal text, 3.0:1 when the large-text exemption
// applies.
func (e *Engine) auditContrast(doc *htmldoc.Document, res *Result) {
	for _, n := range textBearingElements(doc) {
		fg, bg, ok := resolvedColors(n)
		if !ok {
			continue
		}
		threshold := css.ThresholdFor(css.Resolve(n, "font-size"), isBoldContext(n))
		ratio := css.ContrastRatio(fg, bg)
		if ratio < threshold {
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical,
				Message: fmt.Sprintf("Text contrast %.2f:1 is below the %.1f:1 threshold (%s on %s)",
					ratio, threshold, fg.Hex(), bg.Hex()),
				Location: fmt.Sprintf("<%s> %q", n.Data, truncate(htmldoc.Text(n), 40)),
			})
		}
	}
}

// textBearingElements snapshots the body elements that directly contain
// visible text. Script and style content never renders and is skipped.
func textBearingElements(doc *htmldoc.Document) []*html.Node {
	return htmldoc.FindAll(doc.Body(), func(n *html.Node) bool {
		if n.Type != html.ElementNode || htmldoc.IsElement(n, "script", "style") {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
				return true
			}
		}
		return false
	})
}

// resolvedColors resolves the effective foreground and background colors
// for a node. An unparseable color on either side (including transparent
// and inherit) means the check is skipped, not failed.
func resolvedColors(n *html.Node) (fg, bg css.Color, ok bool) {
	fg, okFg := css.ParseColor(css.Resolve(n, "color"))
	bg, okBg := css.ParseColor(css.Resolve(n, "background-color"))
	return fg, bg, okFg && okBg
}

// codeBlock returns the pre/code element a node renders in, or nil.
func codeBlock(n *html.Node) *html.Node {
	if htmldoc.IsElement(n, "pre", "code") {
		return n
	}
	return htmldoc.Ancestor(n, "pre", "code")
}

// isBoldContext detects bold text for the large-text exemption: the
// literal substring "bold" in the element's style attribute, or a tag
// that renders bold by default.
func isBoldContext(n *html.Node) bool {
	if strings.Contains(strings.ToLower(htmldoc.GetAttr(n, "style")), "bold") {
		return true
	}
	return htmldoc.IsElement(n, "h1", "h2", "strong")
}
