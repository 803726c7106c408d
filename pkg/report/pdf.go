package report

import (
	"bytes"
	"fmt"
	"os"

	"codeberg.org/go-pdf/fpdf"
)

// PDF renders the report as a printable summary document: a totals
// header followed by one section per audited file listing its issues.
func (r *Report) PDF() ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, "Accessibility Audit Report", "", 1, "L", false, 0, "")

	technical, subjective := r.TotalIssues()
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 16, fmt.Sprintf("%d files audited, %d technical issues, %d subjective issues",
		r.Len(), technical, subjective), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	for _, path := range r.Paths() {
		result, _ := r.Result(path)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 18, path, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)

		if result.IssueCount() == 0 {
			pdf.CellFormat(0, 14, "No issues found", "", 1, "L", false, 0, "")
			pdf.Ln(6)
			continue
		}
		for _, issue := range result.Technical {
			pdf.MultiCell(0, 14, fmt.Sprintf("[technical] %s - %s", issue.Location, issue.Message), "", "L", false)
		}
		for _, issue := range result.Subjective {
			pdf.MultiCell(0, 14, fmt.Sprintf("[subjective] %s - %s", issue.Location, issue.Message), "", "L", false)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePDF renders the PDF summary to a file.
func (r *Report) WritePDF(path string) error {
	data, err := r.PDF()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("failed to write report PDF: %w", err)
	}
	return nil
}
