package infra

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteRevenueCSV writes the report as
//
//	Month/Year,Total Revenue
//	2024-03,20.00
//	...
//
//	Total Annual Revenue,41.50
//
// Fields containing commas are quoted by the csv writer.
func WriteRevenueCSV(w io.Writer, r RevenueReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Month/Year", "Total Revenue"}); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if err := cw.Write([]string{row.Month, row.Revenue.StringFixed(2)}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := cw.Write([]string{"Total Annual Revenue", r.Total.StringFixed(2)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// SaveRevenueCSV writes the report to path, appending ".csv" when missing.
// It returns the path actually written.
func SaveRevenueCSV(path string, r RevenueReport) (string, error) {
	if path == "" {
		path = DefaultCSVName
	}
	path = withExt(path, ".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csv: create %s: %w", path, err)
	}
	if err := WriteRevenueCSV(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("csv: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("csv: close %s: %w", path, err)
	}
	return path, nil
}
