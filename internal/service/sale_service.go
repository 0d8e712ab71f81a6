package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"revup/internal/dto"
	"revup/internal/model"
	"revup/internal/repository"

	"gorm.io/gorm"
)

type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	DeleteSale(ctx context.Context, saleID int64) error
	// ResetRevenue deletes every sale. Item quantities are not restored.
	ResetRevenue(ctx context.Context) error
}

type saleService struct {
	repo     repository.SaleRepository
	itemRepo repository.ItemRepository
	now      func() time.Time
}

func NewSaleService(repo repository.SaleRepository, itemRepo repository.ItemRepository) SaleService {
	return &saleService{repo: repo, itemRepo: itemRepo, now: time.Now}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RecordSale ────────────────────────────────────────────────────────────────
// The sale row and the stock decrement commit together or not at all.
// The pool holds a single connection, so everything inside fn goes through tx.

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	itemID := strings.TrimSpace(req.ItemID)
	qtyStr := strings.TrimSpace(string(req.Quantity))
	if itemID == "" || qtyStr == "" {
		return nil, userErr(ErrValidation, "All fields must be filled.")
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return nil, userErr(ErrValidation, "Invalid quantity for selling.")
	}
	if qty <= 0 {
		return nil, userErr(ErrValidation, "Quantity to sell must be positive.")
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().Format(model.SaleDateLayout)
	} else if _, err := time.Parse(model.SaleDateLayout, date); err != nil {
		return nil, userErr(ErrValidation, "Sale date must be YYYY-MM-DD.")
	}

	var (
		sale      *model.Sale
		remaining int
	)
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		item, err := s.itemRepo.FindByIDTx(tx, itemID)
		if errors.Is(err, repository.ErrNotFound) {
			return itemNotFound(itemID)
		}
		if err != nil {
			return err
		}
		if qty > item.Quantity {
			return insufficientStock(item.Quantity)
		}

		sale = &model.Sale{
			ItemID:       item.ID,
			QuantitySold: qty,
			PriceSold:    item.Price,
			Date:         date,
		}
		if err := s.repo.CreateTx(tx, sale); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}
		if err := s.itemRepo.DecrementStockTx(tx, item.ID, qty); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return insufficientStock(item.Quantity)
			}
			return fmt.Errorf("decrement stock: %w", err)
		}
		remaining = item.Quantity - qty
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		SaleID:       sale.SaleID,
		ItemID:       sale.ItemID,
		QuantitySold: sale.QuantitySold,
		PriceSold:    sale.PriceSold,
		Date:         sale.Date,
		RemainingQty: remaining,
	}, nil
}

func (s *saleService) DeleteSale(ctx context.Context, saleID int64) error {
	err := s.repo.Delete(ctx, saleID)
	if errors.Is(err, repository.ErrNotFound) {
		return userErr(ErrSaleNotFound, fmt.Sprintf("Sale %d not found.", saleID))
	}
	return err
}

func (s *saleService) ResetRevenue(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func insufficientStock(available int) error {
	return userErr(ErrInsufficientStock, fmt.Sprintf("Not enough stock. Available: %d", available))
}
