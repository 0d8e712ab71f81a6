package repository

import (
	"context"
	"strconv"

	"revup/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Month and year are taken from the "YYYY-MM-DD" text column with substr so
// the same statements run on SQLite and PostgreSQL.
const (
	monthExpr   = "substr(date, 1, 7)"
	yearExpr    = "substr(date, 1, 4)"
	revenueExpr = "COALESCE(SUM(quantity_sold * price_sold), 0)"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	Delete(ctx context.Context, saleID int64) error
	// DeleteAll empties the sales table; items are untouched.
	DeleteAll(ctx context.Context) error

	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	// MonthlyRevenue groups revenue by "YYYY-MM", newest month first.
	// year == 0 returns every year.
	MonthlyRevenue(ctx context.Context, year int) ([]model.MonthlyRevenue, error)
	AnnualRevenue(ctx context.Context, year int) (decimal.Decimal, error)
	// ListByMonth returns the sales of one "YYYY-MM" month, oldest first.
	ListByMonth(ctx context.Context, month string) ([]model.SaleDetail, error)
	// Years lists the distinct years that have sales, newest first.
	Years(ctx context.Context) ([]int, error)

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) Delete(ctx context.Context, saleID int64) error {
	res := r.db.WithContext(ctx).Where("sale_id = ?", saleID).Delete(&model.Sale{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *saleRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM sales").Error
}

func (r *saleRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select(revenueExpr).
		Row().Scan(&total)
	return total, err
}

func (r *saleRepo) MonthlyRevenue(ctx context.Context, year int) ([]model.MonthlyRevenue, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select(monthExpr + " AS month, " + revenueExpr + " AS revenue")
	if year != 0 {
		q = q.Where(yearExpr+" = ?", strconv.Itoa(year))
	}
	var rows []model.MonthlyRevenue
	err := q.Group(monthExpr).Order("month DESC").Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) AnnualRevenue(ctx context.Context, year int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select(revenueExpr).
		Where(yearExpr+" = ?", strconv.Itoa(year)).
		Row().Scan(&total)
	return total, err
}

func (r *saleRepo) ListByMonth(ctx context.Context, month string) ([]model.SaleDetail, error) {
	var rows []model.SaleDetail
	// LEFT JOIN keeps sales whose item was deleted, so the drill-down adds up
	// to the same figure as the monthly summary.
	err := r.db.WithContext(ctx).Table("sales AS s").
		Select("s.sale_id, s.item_id, COALESCE(i.name, '') AS item_name, s.quantity_sold, s.price_sold, s.date").
		Joins("LEFT JOIN items i ON s.item_id = i.id").
		Where("substr(s.date, 1, 7) = ?", month).
		Order("s.date ASC, s.sale_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) Years(ctx context.Context) ([]int, error) {
	var raw []string
	err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT " + yearExpr + " AS year FROM sales ORDER BY year DESC").
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, len(raw))
	for _, y := range raw {
		n, convErr := strconv.Atoi(y)
		if convErr != nil {
			continue // malformed date rows are not a year
		}
		years = append(years, n)
	}
	return years, nil
}
