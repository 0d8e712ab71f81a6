package infra

import (
	"strings"

	"revup/internal/model"

	"github.com/shopspring/decimal"
)

// RevenueReport is the monthly revenue table as shown and exported:
// one row per month, newest first, and the sum of those rows.
type RevenueReport struct {
	// Period is "All Years" or a four-digit year.
	Period string
	Rows   []model.MonthlyRevenue
	Total  decimal.Decimal
}

const (
	DefaultCSVName = "Monthly_Revenue_Report.csv"
	DefaultPDFName = "Monthly_Revenue_Report.pdf"
)

// withExt appends ext to path unless it already ends with it (case-insensitive).
func withExt(path, ext string) string {
	if strings.HasSuffix(strings.ToLower(path), ext) {
		return path
	}
	return path + ext
}
