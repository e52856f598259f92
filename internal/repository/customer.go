package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

var ErrCustomerNotFound = dao.ErrCustomerNotFound

type CustomerRepository struct {
	dao *dao.CustomerDAO
}

func NewCustomerRepository(customerDAO *dao.CustomerDAO) *CustomerRepository {
	return &CustomerRepository{
		dao: customerDAO,
	}
}

func customerDaoToDomain(c dao.Customer) domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return customerDaoToDomain(customer), nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	customers, err := r.dao.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	converted := make([]domain.Customer, len(customers))
	for i, c := range customers {
		converted[i] = customerDaoToDomain(c)
	}

	return converted, nil
}
