package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"revup/internal/dto"
	"revup/internal/model"
	"revup/internal/repository"

	"github.com/shopspring/decimal"
)

// ItemService defines the business logic contract for inventory items.
type ItemService interface {
	List(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error)
	LowStock(ctx context.Context) ([]dto.ItemResponse, error)
	Add(ctx context.Context, req dto.ItemRequest) (*dto.ItemResponse, error)
	Update(ctx context.Context, id string, req dto.ItemRequest) (*dto.ItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type itemService struct {
	repo              repository.ItemRepository
	lowStockThreshold int
}

func NewItemService(repo repository.ItemRepository, lowStockThreshold int) ItemService {
	return &itemService{repo: repo, lowStockThreshold: lowStockThreshold}
}

func (s *itemService) List(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error) {
	var (
		items []model.Item
		err   error
	)
	keyword := strings.TrimSpace(filter.Search)
	if keyword == "" {
		items, err = s.repo.List(ctx)
	} else {
		items, err = s.repo.Search(ctx, keyword)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		if filter.Category != "" && filter.Category != "All" && it.Category != filter.Category {
			continue
		}
		resp = append(resp, s.toResponse(&it))
	}
	return resp, nil
}

func (s *itemService) LowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.ListLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, s.toResponse(&it))
	}
	return resp, nil
}

func (s *itemService) Add(ctx context.Context, req dto.ItemRequest) (*dto.ItemResponse, error) {
	it, err := parseItem(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, it.ID); err == nil {
		return nil, duplicateItem(it.ID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, duplicateItem(it.ID)
		}
		return nil, err
	}
	resp := s.toResponse(it)
	return &resp, nil
}

// Update rewrites name, quantity, price and category of the item at id.
// The id itself never changes; a different id in the body is rejected.
func (s *itemService) Update(ctx context.Context, id string, req dto.ItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(req.ID) == "" {
		req.ID = id
	}
	if req.ID != id {
		return nil, userErr(ErrValidation, "Item ID cannot be changed.")
	}
	it, err := parseItem(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, it); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, itemNotFound(id)
		}
		return nil, err
	}
	resp := s.toResponse(it)
	return &resp, nil
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return itemNotFound(id)
	}
	return err
}

func (s *itemService) toResponse(it *model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: it.Quantity,
		Price:    it.Price,
		Category: it.Category,
		LowStock: it.Quantity <= s.lowStockThreshold,
	}
}

// parseItem applies the form rules: every field filled, quantity an integer,
// price a decimal, neither negative, category from the fixed set.
func parseItem(req dto.ItemRequest) (*model.Item, error) {
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	qtyStr := strings.TrimSpace(string(req.Quantity))
	priceStr := strings.TrimSpace(string(req.Price))
	if id == "" || name == "" || qtyStr == "" || priceStr == "" {
		return nil, userErr(ErrValidation, "All fields must be filled.")
	}

	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return nil, userErr(ErrValidation, "Invalid number format for quantity or price.")
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, userErr(ErrValidation, "Invalid number format for quantity or price.")
	}
	if qty < 0 || price.IsNegative() {
		return nil, userErr(ErrValidation, "Quantity and price cannot be negative.")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.Categories[0]
	}
	if !model.IsCategory(category) {
		return nil, userErr(ErrValidation, fmt.Sprintf("Unknown category %q.", category))
	}

	return &model.Item{ID: id, Name: name, Quantity: qty, Price: price, Category: category}, nil
}

func duplicateItem(id string) error {
	return userErr(ErrDuplicateItem, fmt.Sprintf("Item with ID %s already exists.", id))
}

func itemNotFound(id string) error {
	return userErr(ErrItemNotFound, fmt.Sprintf("Item %s not found.", id))
}
