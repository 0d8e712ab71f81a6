package dto

import "github.com/shopspring/decimal"

// ReportFilter is bound from the query string of the report endpoints.
type ReportFilter struct {
	Year   string `form:"year"`               // "" or "all" = every year
	Format string `form:"format,default=csv"` // csv | pdf
}

type MonthlyRevenueRow struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type MonthlySummaryResponse struct {
	Year string              `json:"year"` // "all" or the four-digit year
	Rows []MonthlyRevenueRow `json:"rows"`
	// AnnualTotal is the sum of Rows.
	AnnualTotal decimal.Decimal `json:"annual_total"`
}

type RevenueResponse struct {
	Year    *int            `json:"year,omitempty"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SaleDetailResponse struct {
	SaleID       int64           `json:"sale_id"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	QuantitySold int             `json:"quantity_sold"`
	PriceSold    decimal.Decimal `json:"price_sold"`
	Date         string          `json:"date"`
}

type MonthSalesResponse struct {
	Month string               `json:"month"`
	Sales []SaleDetailResponse `json:"sales"`
	Total decimal.Decimal      `json:"total"`
}

type YearsResponse struct {
	Years []int `json:"years"`
}
