package model

import "github.com/shopspring/decimal"

// SaleDateLayout is the string encoding of Sale.Date.
const SaleDateLayout = "2006-01-02"

// Sale is an immutable record of a quantity of an item sold on a given day.
// PriceSold is captured at sale time and is not affected by later price edits.
// ItemID is intentionally not a foreign key: deleting an item keeps its sales.
type Sale struct {
	SaleID       int64           `gorm:"column:sale_id;primaryKey;autoIncrement"`
	ItemID       string          `gorm:"type:varchar(64);index;not null"`
	QuantitySold int             `gorm:"not null"`
	PriceSold    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date         string          `gorm:"type:varchar(10);index;not null"`
}

func (Sale) TableName() string { return "sales" }

// MonthlyRevenue is one aggregated row of the monthly revenue summary.
type MonthlyRevenue struct {
	Month   string          `gorm:"column:month"`
	Revenue decimal.Decimal `gorm:"column:revenue"`
}

// SaleDetail is a sale joined with the display name of its item.
// ItemName is empty when the item has since been deleted.
type SaleDetail struct {
	SaleID       int64           `gorm:"column:sale_id"`
	ItemID       string          `gorm:"column:item_id"`
	ItemName     string          `gorm:"column:item_name"`
	QuantitySold int             `gorm:"column:quantity_sold"`
	PriceSold    decimal.Decimal `gorm:"column:price_sold"`
	Date         string          `gorm:"column:date"`
}
