package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
)

type CatalogProductRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

type CatalogService struct {
	repo CatalogProductRepository
}

func NewCatalogService(repo CatalogProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *CatalogService) GetProductByBarcode(ctx context.Context, barcode string) (domain.Product, error) {
	product, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByBarcode -> %w", err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return products, nil
}
