package a11y

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// scrollWrapperClass marks the horizontally scrollable container wide
// tables are wrapped in for mobile reflow.
const scrollWrapperClass = "table-scroll"

// fixTables enforces table structure per table, in order: drop empty
// tbody elements, insert a caption, promote the first row to a header
// row, assign scope to header cells, ensure border styling, and wrap
// wide tables in a scroll container. Each step checks state first, so a
// correctly structured table passes through untouched.
func (e *Engine) fixTables(doc *htmldoc.Document) []Fix {
	var fixes []Fix
	for _, table := range htmldoc.Elements(doc.Root, "table") {
		fixes = append(fixes, e.fixTable(table)...)
	}
	return fixes
}

func (e *Engine) fixTable(table *html.Node) []Fix {
	var fixes []Fix

	// 1. Remove tbody elements containing zero rows.
	for _, tbody := range htmldoc.Elements(table, "tbody") {
		if len(htmldoc.Elements(tbody, "tr")) == 0 {
			tbody.Parent.RemoveChild(tbody)
			fixes = append(fixes, fixf("Removed empty tbody from table"))
		}
	}

	// 2. Insert a generic caption when none exists.
	if len(htmldoc.Elements(table, "caption")) == 0 {
		caption := htmldoc.NewElement("caption")
		caption.AppendChild(htmldoc.NewText(e.cfg.CaptionPlaceholder))
		htmldoc.InsertFirst(table, caption)
		fixes = append(fixes, fixf("Added placeholder caption %q to table", e.cfg.CaptionPlaceholder))
	}

	// 3. Promote the first row into a thead of header cells.
	if len(htmldoc.Elements(table, "thead")) == 0 {
		if firstRow := htmldoc.FindFirst(table, func(n *html.Node) bool {
			return htmldoc.IsElement(n, "tr")
		}); firstRow != nil {
			thead := htmldoc.NewElement("thead")
			anchor := firstRow
			if htmldoc.IsElement(firstRow.Parent, "tbody") {
				anchor = firstRow.Parent
			}
			anchor.Parent.InsertBefore(thead, anchor)
			firstRow.Parent.RemoveChild(firstRow)
			thead.AppendChild(firstRow)
			// Moving the row may have emptied an implicit tbody the
			// parser inserted; drop it as part of the same step so the
			// empty-tbody rule finds nothing on a rerun.
			if anchor != firstRow && len(htmldoc.Elements(anchor, "tr")) == 0 {
				anchor.Parent.RemoveChild(anchor)
			}
			for _, cell := range htmldoc.Elements(firstRow, "td") {
				cell.Data = "th"
				cell.DataAtom = 0
				htmldoc.SetAttr(cell, "scope", "col")
			}
			fixes = append(fixes, fixf("Converted first table row into a header row"))
		}
	}

	// 4. Assign scope to header cells lacking one.
	for _, th := range htmldoc.Elements(table, "th") {
		if htmldoc.HasAttr(th, "scope") {
			continue
		}
		scope := "row"
		if htmldoc.Ancestor(th, "thead") != nil {
			scope = "col"
		}
		htmldoc.SetAttr(th, "scope", scope)
		fixes = append(fixes, fixf("Assigned scope=%q to header cell %q", scope, truncate(htmldoc.Text(th), 30)))
	}

	// 5. Ensure border attribute and border-collapse declaration.
	if !htmldoc.HasAttr(table, "border") {
		htmldoc.SetAttr(table, "border", "1")
		fixes = append(fixes, fixf("Added border attribute to table"))
	}
	if _, ok := getStyleDecl(table, "border-collapse"); !ok {
		setStyleDecl(table, "border-collapse", "collapse")
		fixes = append(fixes, fixf("Added border-collapse style to table"))
	}

	// 6. Wrap wide tables in a horizontally scrollable container.
	if cols := headerColumnCount(table); cols > e.cfg.MaxHeaderColumns && !insideScrollWrapper(table) {
		wrapper := htmldoc.NewElement("div",
			"class", scrollWrapperClass,
			"style", "overflow-x: auto;")
		htmldoc.Wrap(table, wrapper)
		fixes = append(fixes, fixf("Wrapped %d-column table in a scrollable container", cols))
	}

	return fixes
}

// auditTables reports structural problems per table.
func (e *Engine) auditTables(doc *htmldoc.Document, res *Result) {
	for i, table := range htmldoc.Elements(doc.Root, "table") {
		loc := fmt.Sprintf("table #%d", i+1)

		for _, tbody := range htmldoc.Elements(table, "tbody") {
			if len(htmldoc.Elements(tbody, "tr")) == 0 {
				res.Technical = append(res.Technical, Issue{
					Kind: KindTechnical, Message: "Table contains an empty tbody", Location: loc,
				})
			}
		}
		if len(htmldoc.Elements(table, "caption")) == 0 {
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical, Message: "Table has no caption", Location: loc,
			})
		} else {
			for _, caption := range htmldoc.Elements(table, "caption") {
				if htmldoc.Text(caption) == e.cfg.CaptionPlaceholder {
					res.Subjective = append(res.Subjective, Issue{
						Kind:     KindSubjective,
						Message:  "Table caption is a placeholder and needs descriptive wording",
						Location: loc,
					})
				}
			}
		}
		if len(htmldoc.Elements(table, "thead")) == 0 {
			res.Technical = append(res.Technical, Issue{
				Kind: KindTechnical, Message: "Table has no header row (thead)", Location: loc,
			})
		}
		for _, th := range htmldoc.Elements(table, "th") {
			if !htmldoc.HasAttr(th, "scope") {
				res.Technical = append(res.Technical, Issue{
					Kind:     KindTechnical,
					Message:  fmt.Sprintf("Header cell %q has no scope attribute", truncate(htmldoc.Text(th), 30)),
					Location: loc,
				})
			}
		}
		if cols := headerColumnCount(table); cols > e.cfg.MaxHeaderColumns && !insideScrollWrapper(table) {
			res.Technical = append(res.Technical, Issue{
				Kind:     KindTechnical,
				Message:  fmt.Sprintf("%d-column table is not horizontally scrollable on narrow screens", cols),
				Location: loc,
			})
		}
	}
}

// headerColumnCount counts the cells of the table's first row.
func headerColumnCount(table *html.Node) int {
	firstRow := htmldoc.FindFirst(table, func(n *html.Node) bool {
		return htmldoc.IsElement(n, "tr")
	})
	if firstRow == nil {
		return 0
	}
	count := 0
	for c := firstRow.FirstChild; c != nil; c = c.NextSibling {
		if htmldoc.IsElement(c, "th", "td") {
			count++
		}
	}
	return count
}

// insideScrollWrapper reports whether the table already sits in a
// horizontally scrollable container.
func insideScrollWrapper(table *html.Node) bool {
	for p := table.Parent; p != nil; p = p.Parent {
		if !htmldoc.IsElement(p, "div") {
			continue
		}
		if htmldoc.GetAttr(p, "class") == scrollWrapperClass {
			return true
		}
		if v, ok := getStyleDecl(p, "overflow-x"); ok && (v == "auto" || v == "scroll") {
			return true
		}
	}
	return false
}
