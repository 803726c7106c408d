package htmldoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// Document is the ownership root over a mutable HTML node tree.
// It is created at file-read time, mutated in place by the remediation
// passes, and discarded once serialized.
type Document struct {
	Root *html.Node
}

// Parse converts raw HTML bytes into a Document.
// Malformed fragments are handled by the tolerant x/net/html parser rather
// than failing the whole file.
func Parse(data []byte) (*Document, error) {
	// Figure out the character encoding
	content := string(data)
	encoding := "utf-8"
	if metaStart := strings.Index(content, "charset="); metaStart >= 0 {
		metaStart += len("charset=")
		snippetEnd := metaStart + 20
		if snippetEnd > len(content) {
			snippetEnd = len(content)
		}
		fields := strings.FieldsFunc(content[metaStart:snippetEnd], func(r rune) bool {
			return r == '"' || r == ';' || r == '\'' || r == '>'
		})
		if len(fields) > 0 {
			if enc := strings.ToLower(fields[0]); enc != "" {
				encoding = enc
			}
		}
	}

	// Convert to UTF-8 if needed. Office exports commonly declare
	// iso-8859-1 or windows-1252; both decode through Windows1252.
	decoded := data
	if encoding != "utf-8" {
		if out, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
			decoded = out
		}
	}

	root, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// Render serializes the document tree back to an HTML string.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.Root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Body returns the document's body element, or the root if none exists.
func (d *Document) Body() *html.Node {
	if body := FindFirst(d.Root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "body"
	}); body != nil {
		return body
	}
	return d.Root
}

// Head returns the document's head element, or nil if none exists.
func (d *Document) Head() *html.Node {
	return FindFirst(d.Root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "head"
	})
}

// Title returns the text of the document's <title> element.
func (d *Document) Title() string {
	title := FindFirst(d.Root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "title"
	})
	if title == nil {
		return ""
	}
	return Text(title)
}
