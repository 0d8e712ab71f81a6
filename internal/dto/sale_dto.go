package dto

import "github.com/shopspring/decimal"

type RecordSaleRequest struct {
	ItemID   string    `json:"item_id"  validate:"required"`
	Quantity FormValue `json:"quantity" validate:"required"`
	// Date is "YYYY-MM-DD"; empty means today.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type SaleResponse struct {
	SaleID       int64           `json:"sale_id"`
	ItemID       string          `json:"item_id"`
	QuantitySold int             `json:"quantity_sold"`
	PriceSold    decimal.Decimal `json:"price_sold"`
	Date         string          `json:"date"`
	RemainingQty int             `json:"remaining_quantity"`
}
