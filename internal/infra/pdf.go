package infra

// pdf.go: monthly revenue report rendered with go-pdf/fpdf.
// A4 portrait page with:
//   - Title and period
//   - Two-column table (month, revenue)
//   - Bold annual total

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
)

// WriteRevenuePDF renders the report to w. currency prefixes every amount
// (e.g. "PHP"); an empty label prints bare numbers.
func WriteRevenuePDF(w io.Writer, r RevenueReport, currency string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	money := func(s string) string {
		if currency == "" {
			return s
		}
		return currency + " " + s
	}

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "RevUp - Monthly Revenue Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Period: "+r.Period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.5
	col2 := contentW * 0.5

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Month/Year", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Total Revenue", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	if len(r.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 7, "No sales recorded.", "", 1, "C", false, 0, "")
	}
	for _, row := range r.Rows {
		pdf.CellFormat(col1, 6, row.Month, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, money(row.Revenue.StringFixed(2)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(20, pdf.GetY(), pageW-20, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1, 7, "Total Annual Revenue", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, money(r.Total.StringFixed(2)), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render: %w", err)
	}
	return nil
}

// SaveRevenuePDF writes the report to path, appending ".pdf" when missing.
// It returns the path actually written.
func SaveRevenuePDF(path string, r RevenueReport, currency string) (string, error) {
	if path == "" {
		path = DefaultPDFName
	}
	path = withExt(path, ".pdf")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("pdf: create %s: %w", path, err)
	}
	if err := WriteRevenuePDF(f, r, currency); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("pdf: close %s: %w", path, err)
	}
	return path, nil
}
