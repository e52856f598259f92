package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

var (
	ErrCartItemNotFound   = dao.ErrCartItemNotFound
	ErrEmptyCart          = dao.ErrEmptyCart
	ErrActiveCartConflict = dao.ErrActiveCartConflict
	ErrHoldGroupNotFound  = dao.ErrHoldGroupNotFound
)

type CartRepository struct {
	dao *dao.CartDAO
}

func NewCartRepository(cartDAO *dao.CartDAO) *CartRepository {
	return &CartRepository{
		dao: cartDAO,
	}
}

func (r *CartRepository) domainToDao(item domain.CartItem) dao.CartItem {
	return dao.CartItem{
		ID:          item.ID,
		CashierID:   item.CashierID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		Price:       item.Price,
		HoldGroupID: item.HoldGroupID,
		HoldLabel:   item.HoldLabel,
		HeldAt:      item.HeldAt,
	}
}

func (r *CartRepository) daoToDomain(item dao.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:          item.ID,
		CashierID:   item.CashierID,
		ProductID:   item.ProductID,
		Product:     productDaoToDomain(item.Product),
		Quantity:    item.Quantity,
		Price:       item.Price,
		HoldGroupID: item.HoldGroupID,
		HoldLabel:   item.HoldLabel,
		HeldAt:      item.HeldAt,
	}
}

func (r *CartRepository) daosToDomain(items []dao.CartItem) []domain.CartItem {
	converted := make([]domain.CartItem, len(items))
	for i, item := range items {
		converted[i] = r.daoToDomain(item)
	}
	return converted
}

func (r *CartRepository) Create(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CartRepository) Update(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(item))
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CartRepository) FindByID(ctx context.Context, cashierID, itemID uint) (domain.CartItem, error) {
	item, err := r.dao.FindByID(ctx, cashierID, itemID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(item), nil
}

func (r *CartRepository) FindByCashierAndProduct(ctx context.Context, cashierID, productID uint) (domain.CartItem, error) {
	item, err := r.dao.FindByCashierAndProduct(ctx, cashierID, productID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("r.dao.FindByCashierAndProduct -> %w", err)
	}

	return r.daoToDomain(item), nil
}

func (r *CartRepository) FindActive(ctx context.Context, cashierID uint) ([]domain.CartItem, error) {
	items, err := r.dao.FindActive(ctx, cashierID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daosToDomain(items), nil
}

func (r *CartRepository) FindHeld(ctx context.Context, cashierID uint) ([]domain.CartItem, error) {
	items, err := r.dao.FindHeld(ctx, cashierID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHeld -> %w", err)
	}

	return r.daosToDomain(items), nil
}

func (r *CartRepository) Delete(ctx context.Context, itemID uint) error {
	if err := r.dao.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CartRepository) HoldActive(ctx context.Context, cashierID uint, groupID, label string, heldAt time.Time) error {
	if err := r.dao.HoldActive(ctx, cashierID, groupID, label, heldAt); err != nil {
		return fmt.Errorf("r.dao.HoldActive -> %w", err)
	}

	return nil
}

func (r *CartRepository) ResumeGroup(ctx context.Context, cashierID uint, groupID string) error {
	if err := r.dao.ResumeGroup(ctx, cashierID, groupID); err != nil {
		return fmt.Errorf("r.dao.ResumeGroup -> %w", err)
	}

	return nil
}

func (r *CartRepository) ClearGroup(ctx context.Context, cashierID uint, groupID string) error {
	if err := r.dao.ClearGroup(ctx, cashierID, groupID); err != nil {
		return fmt.Errorf("r.dao.ClearGroup -> %w", err)
	}

	return nil
}
