package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

var (
	ErrProductNotFound   = dao.ErrProductNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type ProductRepository struct {
	dao *dao.ProductDAO
}

func NewProductRepository(productDAO *dao.ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: productDAO,
	}
}

func productDaoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:        p.ID,
		Name:      p.Name,
		Barcode:   p.Barcode,
		Stock:     p.Stock,
		BuyPrice:  p.BuyPrice,
		SellPrice: p.SellPrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	product, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return productDaoToDomain(product), nil
}

func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (domain.Product, error) {
	product, err := r.dao.FindByBarcode(ctx, barcode)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByBarcode -> %w", err)
	}

	return productDaoToDomain(product), nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	products, err := r.dao.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	converted := make([]domain.Product, len(products))
	for i, p := range products {
		converted[i] = productDaoToDomain(p)
	}

	return converted, nil
}
