package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"revup/internal/dto"
	"revup/internal/infra"
	"revup/internal/model"
	"revup/internal/repository"

	"github.com/shopspring/decimal"
)

// AllYears selects every year in the monthly summary and exports.
const AllYears = 0

const monthLayout = "2006-01"

type ReportService interface {
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	MonthlySummary(ctx context.Context, year int) (*dto.MonthlySummaryResponse, error)
	AnnualRevenue(ctx context.Context, year int) (decimal.Decimal, error)
	IndividualSales(ctx context.Context, month string) (*dto.MonthSalesResponse, error)
	Years(ctx context.Context) ([]int, error)

	ExportCSV(ctx context.Context, w io.Writer, year int) error
	ExportPDF(ctx context.Context, w io.Writer, year int) error
	// ExportFile writes the report to path and returns the path written.
	// CSV output always ends in ".csv"; format "pdf" ends in ".pdf".
	ExportFile(ctx context.Context, path, format string, year int) (string, error)
}

type reportService struct {
	repo     repository.SaleRepository
	currency string
}

func NewReportService(repo repository.SaleRepository, currency string) ReportService {
	return &reportService{repo: repo, currency: currency}
}

// ParseYear reads the year filter. "", "all" and "All Years" select every year.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "all", "all years":
		return AllYears, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1 || y > 9999 {
		return 0, userErr(ErrValidation, fmt.Sprintf("Invalid year %q.", s))
	}
	return y, nil
}

func (s *reportService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

func (s *reportService) MonthlySummary(ctx context.Context, year int) (*dto.MonthlySummaryResponse, error) {
	report, err := s.buildReport(ctx, year)
	if err != nil {
		return nil, err
	}
	resp := &dto.MonthlySummaryResponse{
		Year:        "all",
		Rows:        make([]dto.MonthlyRevenueRow, 0, len(report.Rows)),
		AnnualTotal: report.Total,
	}
	if year != AllYears {
		resp.Year = strconv.Itoa(year)
	}
	for _, r := range report.Rows {
		resp.Rows = append(resp.Rows, dto.MonthlyRevenueRow{Month: r.Month, Revenue: r.Revenue})
	}
	return resp, nil
}

func (s *reportService) AnnualRevenue(ctx context.Context, year int) (decimal.Decimal, error) {
	if year < 1 || year > 9999 {
		return decimal.Zero, userErr(ErrValidation, fmt.Sprintf("Invalid year %d.", year))
	}
	total, err := s.repo.AnnualRevenue(ctx, year)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

func (s *reportService) IndividualSales(ctx context.Context, month string) (*dto.MonthSalesResponse, error) {
	if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, userErr(ErrValidation, "Month must be YYYY-MM.")
	}
	details, err := s.repo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	resp := &dto.MonthSalesResponse{
		Month: month,
		Sales: make([]dto.SaleDetailResponse, 0, len(details)),
		Total: decimal.Zero,
	}
	for _, d := range details {
		resp.Sales = append(resp.Sales, dto.SaleDetailResponse{
			SaleID:       d.SaleID,
			ItemID:       d.ItemID,
			ItemName:     d.ItemName,
			QuantitySold: d.QuantitySold,
			PriceSold:    d.PriceSold,
			Date:         d.Date,
		})
		resp.Total = resp.Total.Add(d.PriceSold.Mul(decimal.NewFromInt(int64(d.QuantitySold))))
	}
	resp.Total = resp.Total.Round(2)
	return resp, nil
}

func (s *reportService) Years(ctx context.Context) ([]int, error) {
	years, err := s.repo.Years(ctx)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}

// ── Export ────────────────────────────────────────────────────────────────────

func (s *reportService) ExportCSV(ctx context.Context, w io.Writer, year int) error {
	report, err := s.buildReport(ctx, year)
	if err != nil {
		return err
	}
	return infra.WriteRevenueCSV(w, *report)
}

func (s *reportService) ExportPDF(ctx context.Context, w io.Writer, year int) error {
	report, err := s.buildReport(ctx, year)
	if err != nil {
		return err
	}
	return infra.WriteRevenuePDF(w, *report, s.currency)
}

func (s *reportService) ExportFile(ctx context.Context, path, format string, year int) (string, error) {
	report, err := s.buildReport(ctx, year)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(format) {
	case "", "csv":
		return infra.SaveRevenueCSV(path, *report)
	case "pdf":
		return infra.SaveRevenuePDF(path, *report, s.currency)
	default:
		return "", unknownFormat(format)
	}
}

// ValidateFormat rejects export formats other than csv and pdf.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "csv", "pdf":
		return nil
	}
	return unknownFormat(format)
}

func unknownFormat(format string) error {
	return userErr(ErrValidation, fmt.Sprintf("Unsupported export format %q.", format))
}

// buildReport loads the monthly rows and sums them; the total is the sum of
// the displayed rows so the table and its footer always agree.
func (s *reportService) buildReport(ctx context.Context, year int) (*infra.RevenueReport, error) {
	if year != AllYears && (year < 1 || year > 9999) {
		return nil, userErr(ErrValidation, fmt.Sprintf("Invalid year %d.", year))
	}
	rows, err := s.repo.MonthlyRevenue(ctx, year)
	if err != nil {
		return nil, err
	}

	report := &infra.RevenueReport{
		Period: "All Years",
		Rows:   make([]model.MonthlyRevenue, 0, len(rows)),
		Total:  decimal.Zero,
	}
	if year != AllYears {
		report.Period = strconv.Itoa(year)
	}
	for _, r := range rows {
		r.Revenue = r.Revenue.Round(2)
		report.Rows = append(report.Rows, r)
		report.Total = report.Total.Add(r.Revenue)
	}
	return report, nil
}

