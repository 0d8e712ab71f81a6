package repository

import (
	"context"
	"errors"
	"strings"

	"revup/internal/model"

	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for inventory items.
// Services depend on this interface, not on the GORM implementation.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindByIDTx(tx *gorm.DB, id string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	// Search matches the keyword as a substring of id or name.
	Search(ctx context.Context, keyword string) ([]model.Item, error)
	ListLowStock(ctx context.Context, threshold int) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id string) error

	// DecrementStockTx lowers quantity by qty only when enough stock remains.
	DecrementStockTx(tx *gorm.DB, id string, qty int) error
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	err := r.db.WithContext(ctx).Create(it).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *itemRepo) FindByID(ctx context.Context, id string) (*model.Item, error) {
	return r.FindByIDTx(r.db.WithContext(ctx), id)
}

func (r *itemRepo) FindByIDTx(tx *gorm.DB, id string) (*model.Item, error) {
	var it model.Item
	err := tx.Where("id = ?", id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) Search(ctx context.Context, keyword string) ([]model.Item, error) {
	var items []model.Item
	// LOWER on both sides keeps SQLite's case-insensitive LIKE on PostgreSQL too.
	like := "%" + strings.ToLower(keyword) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(id) LIKE ? OR LOWER(name) LIKE ?", like, like).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) ListLowStock(ctx context.Context, threshold int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("quantity ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, it *model.Item) error {
	res := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", it.ID).Updates(map[string]interface{}{
		"name":     it.Name,
		"quantity": it.Quantity,
		"price":    it.Price,
		"category": it.Category,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepo) DecrementStockTx(tx *gorm.DB, id string, qty int) error {
	res := tx.Model(&model.Item{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
