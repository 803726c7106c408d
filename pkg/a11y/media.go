package a11y

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// suggestionMaxLen bounds context-derived link text suggestions.
const suggestionMaxLen = 60

// bareURLRe recognizes link text that is itself a URL.
var bareURLRe = regexp.MustCompile(`(?i)^(https?://|www\.)\S+$`)

// extensionRe recognizes a plausible file extension on a URL path.
var extensionRe = regexp.MustCompile(`^\.[a-zA-Z0-9]{2,5}$`)

// auditImages classifies alt-text problems. The quality checks run in
// priority order with first match winning; the math-equation flag is
// raised independently because such images need verification regardless
// of how good the alt text looks.
func (e *Engine) auditImages(doc *htmldoc.Document, res *Result) {
	for _, img := range htmldoc.Elements(doc.Root, "img") {
		src := htmldoc.GetAttr(img, "src")
		loc := fmt.Sprintf("img[src=%s]", truncate(src, 40))
		alt := htmldoc.GetAttr(img, "alt")

		switch {
		case !htmldoc.HasAttr(img, "alt"):
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical, Message: "Image is missing alt text", Location: loc,
			})
		case alt == "" && htmldoc.GetAttr(img, "role") != "presentation":
			res.Subjective = append(res.Subjective, Issue{
				Kind: KindSubjective, Message: "Empty alt text (needs role='presentation')", Location: loc,
			})
		case e.genericAlts[strings.ToLower(alt)]:
			res.Subjective = append(res.Subjective, Issue{
				Kind:     KindSubjective,
				Message:  fmt.Sprintf("Generic alt text %q describes nothing", alt),
				Location: loc,
			})
		case strings.EqualFold(alt, path.Base(src)):
			res.Subjective = append(res.Subjective, Issue{
				Kind: KindSubjective, Message: "Filename used as alt text", Location: loc,
			})
		}

		if e.looksLikeEquation(src, alt) {
			res.Subjective = append(res.Subjective, Issue{
				Kind:     KindSubjective,
				Message:  "Image appears to be a math equation; alt text needs verification",
				Location: loc,
			})
		}
	}
}

// fixImages applies the only image mutation that is safe without human
// input: marking an image decorative once the configured confirmer (an
// external decision) approves it.
func (e *Engine) fixImages(doc *htmldoc.Document) []Fix {
	if e.cfg.ConfirmDecorative == nil {
		return nil
	}
	var fixes []Fix
	for _, img := range htmldoc.Elements(doc.Root, "img") {
		if !htmldoc.HasAttr(img, "alt") || htmldoc.GetAttr(img, "alt") != "" {
			continue
		}
		if htmldoc.GetAttr(img, "role") == "presentation" {
			continue
		}
		src := htmldoc.GetAttr(img, "src")
		if e.cfg.ConfirmDecorative(src) {
			htmldoc.SetAttr(img, "role", "presentation")
			fixes = append(fixes, fixf("Marked image %s as decorative", truncate(src, 40)))
		}
	}
	return fixes
}

// looksLikeEquation reports whether an image's filename or alt text
// contains any configured equation term.
func (e *Engine) looksLikeEquation(src, alt string) bool {
	haystack := strings.ToLower(path.Base(src) + " " + alt)
	for _, term := range e.cfg.EquationTerms {
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// auditLinks classifies weak link text: empty, vague phrases, raw URLs,
// and filenames standing in for descriptions.
func (e *Engine) auditLinks(doc *htmldoc.Document, res *Result) {
	for _, a := range htmldoc.Elements(doc.Root, "a") {
		href := htmldoc.GetAttr(a, "href")
		text := htmldoc.Text(a)
		loc := fmt.Sprintf("a[href=%s]", truncate(href, 40))

		switch {
		case text == "":
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical, Message: "Link has no visible text", Location: loc,
			})
		case e.vaguePhrases[strings.ToLower(text)]:
			res.Subjective = append(res.Subjective, Issue{
				Kind:     KindSubjective,
				Message:  fmt.Sprintf("Vague link text %q; suggest %q", text, e.SuggestLinkText(href, nearbyContext(a))),
				Location: loc,
			})
		case text == href || (bareURLRe.MatchString(text) && len(text) > 20):
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical, Message: "Raw URL used as link text", Location: loc,
			})
		case e.endsWithDocumentExtension(text):
			res.Subjective = append(res.Subjective, Issue{
				Kind:     KindSubjective,
				Message:  fmt.Sprintf("Filename used as link text; suggest %q", e.SuggestLinkText(href, nearbyContext(a))),
				Location: loc,
			})
		}
	}
}

// fixLinks rewrites weak link text, but only where the explicit rule
// matches: the link targets a file whose name yields a readable
// suggestion. Links with no derivable suggestion are left for the audit
// report and caller confirmation.
func (e *Engine) fixLinks(doc *htmldoc.Document) []Fix {
	var fixes []Fix
	for _, a := range htmldoc.Elements(doc.Root, "a") {
		href := htmldoc.GetAttr(a, "href")
		text := htmldoc.Text(a)

		weak := e.vaguePhrases[strings.ToLower(text)] ||
			text == href ||
			(bareURLRe.MatchString(text) && len(text) > 20) ||
			e.endsWithDocumentExtension(text)
		if !weak {
			continue
		}

		suggestion, ok := e.suggestFromFilename(href)
		if !ok || suggestion == text {
			continue
		}
		replaceChildren(a, htmldoc.NewText(suggestion))
		fixes = append(fixes, fixf("Rewrote link text %q as %q", truncate(text, 40), suggestion))
	}
	return fixes
}

// auditIframes reports missing or meaningless iframe titles, and
// auditMedia flags audio/video without a captions track.
func (e *Engine) auditIframes(doc *htmldoc.Document, res *Result) {
	for _, frame := range htmldoc.Elements(doc.Root, "iframe") {
		src := htmldoc.GetAttr(frame, "src")
		title := htmldoc.GetAttr(frame, "title")
		loc := fmt.Sprintf("iframe[src=%s]", truncate(src, 40))

		switch {
		case title == "":
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical, Message: "Iframe has no title attribute", Location: loc,
			})
		case e.genericTitles[strings.ToLower(title)]:
			res.Technical = append(res.Technical, Issue{
				Kind:     KindTechnical,
				Message:  fmt.Sprintf("Iframe title %q is generic", title),
				Location: loc,
			})
		}
	}
}

func (e *Engine) auditMedia(doc *htmldoc.Document, res *Result) {
	for _, media := range htmldoc.Elements(doc.Root, "video", "audio") {
		hasCaptions := false
		for _, track := range htmldoc.Elements(media, "track") {
			kind := htmldoc.GetAttr(track, "kind")
			if kind == "captions" || kind == "subtitles" {
				hasCaptions = true
				break
			}
		}
		if !hasCaptions {
			res.Subjective = append(res.Subjective, Issue{
				Kind:     KindSubjective,
				Message:  fmt.Sprintf("<%s> has no captions track", media.Data),
				Location: fmt.Sprintf("%s[src=%s]", media.Data, truncate(htmldoc.GetAttr(media, "src"), 40)),
			})
		}
	}
}

// fixIframes substitutes a title guessed from the source domain for
// iframes whose title is missing or generic.
func (e *Engine) fixIframes(doc *htmldoc.Document) []Fix {
	var fixes []Fix
	for _, frame := range htmldoc.Elements(doc.Root, "iframe") {
		src := htmldoc.GetAttr(frame, "src")
		title := htmldoc.GetAttr(frame, "title")
		if title != "" && !e.genericTitles[strings.ToLower(title)] {
			continue
		}
		guess := e.SuggestIframeTitle(src)
		if title == guess {
			// The fallback guess is itself in the generic set; leaving
			// it alone keeps the pass idempotent.
			continue
		}
		htmldoc.SetAttr(frame, "title", guess)
		fixes = append(fixes, fixf("Set iframe title %q from source %s", guess, truncate(src, 40)))
	}
	return fixes
}

// SuggestIframeTitle guesses a human-readable iframe title from the
// source URL's host using the configured domain table.
func (e *Engine) SuggestIframeTitle(src string) string {
	host := src
	if u, err := url.Parse(src); err == nil && u.Host != "" {
		host = u.Host
	}
	host = strings.ToLower(host)
	for domain, title := range e.cfg.IframeDomainTitles {
		if strings.Contains(host, strings.ToLower(domain)) {
			return title
		}
	}
	return e.cfg.FallbackIframeTitle
}

// SuggestLinkText derives readable link text from the target filename
// (title-cased, separators replaced with spaces, extension appended in
// parentheses), falling back to nearby content truncated to a short
// length. Suggestions are advisory; the fix pass applies them only on an
// explicit rule match.
func (e *Engine) SuggestLinkText(href, context string) string {
	if suggestion, ok := e.suggestFromFilename(href); ok {
		return suggestion
	}
	context = strings.TrimSpace(context)
	if context != "" {
		return truncate(context, suggestionMaxLen)
	}
	return ""
}

// suggestFromFilename builds link text from the basename of the href
// path when it carries a recognizable file extension.
func (e *Engine) suggestFromFilename(href string) (string, bool) {
	target := href
	if u, err := url.Parse(href); err == nil && u.Path != "" {
		target = u.Path
	}
	base := path.Base(target)
	ext := path.Ext(base)
	if !extensionRe.MatchString(ext) {
		return "", false
	}

	name := strings.TrimSuffix(base, ext)
	name = strings.NewReplacer("-", " ", "_", " ", "+", " ", "%20", " ", ".", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", false
	}

	titled := e.titleCaser.String(strings.ToLower(name))
	return fmt.Sprintf("%s (%s)", titled, strings.ToUpper(strings.TrimPrefix(ext, "."))), true
}

// endsWithDocumentExtension reports whether link text ends in one of the
// configured document extensions.
func (e *Engine) endsWithDocumentExtension(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, ext := range e.cfg.DocumentExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// nearbyContext collects text from the closest block-level container to
// feed context-based suggestions.
func nearbyContext(n *html.Node) string {
	if block := htmldoc.Ancestor(n, "p", "li", "td", "h1", "h2", "h3", "h4", "h5", "h6"); block != nil {
		return htmldoc.Text(block)
	}
	return ""
}

// replaceChildren removes all children of n and appends the replacement.
func replaceChildren(n, replacement *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(replacement)
}
