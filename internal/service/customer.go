package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository"
)

var ErrCustomerNotFound = repository.ErrCustomerNotFound

type CustomerRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	customers, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return customers, nil
}
