package a11y

import "github.com/accessibly/remedia/pkg/htmldoc"

// Audit runs every checker over the document and returns the issues
// partitioned into technical and subjective findings. The document is
// never mutated; path is used for report identification only.
func (e *Engine) Audit(doc *htmldoc.Document, path string) Result {
	res := Result{
		Path:       path,
		Technical:  []Issue{},
		Subjective: []Issue{},
	}

	e.auditContrast(doc, &res)
	e.auditHeadings(doc, &res)
	e.auditTables(doc, &res)
	e.auditImages(doc, &res)
	e.auditLinks(doc, &res)
	e.auditIframes(doc, &res)
	e.auditMedia(doc, &res)
	e.auditDeprecatedTags(doc, &res)
	e.auditReflow(doc, &res)

	return res
}
