package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemRequest mirrors the item form: numbers arrive as entered and are
// parsed by the service so malformed numbers are reported, not coerced.
type ItemRequest struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity FormValue `json:"quantity"`
	Price    FormValue `json:"price"`
	Category string    `json:"category"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ItemFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"` // empty or "All" = every category
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	LowStock bool            `json:"low_stock"`
}
