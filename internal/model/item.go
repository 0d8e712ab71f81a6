package model

import "github.com/shopspring/decimal"

// Categories accepted for an Item. The first entry is the default shown by clients.
var Categories = []string{"Electronics", "Clothing", "Furniture", "Other"}

// IsCategory reports whether c is one of the fixed item categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Item is a stocked product. ID is chosen by the operator and never changes
// after creation; Quantity is decremented by every recorded sale.
type Item struct {
	ID       string          `gorm:"primaryKey;type:varchar(64)"`
	Name     string          `gorm:"index;not null"`
	Quantity int             `gorm:"not null;default:0"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category string          `gorm:"type:varchar(32);not null"`
}

func (Item) TableName() string { return "items" }
