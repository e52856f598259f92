package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository"
)

var ErrTransactionNotFound = repository.ErrTransactionNotFound

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type TransactionRepository interface {
	FindByInvoice(ctx context.Context, invoice string) (domain.Transaction, error)
	ListByCashier(ctx context.Context, cashierID uint, limit, offset int) ([]domain.Transaction, error)
	ListProfitsByTransaction(ctx context.Context, transactionID uint) ([]domain.ProfitRecord, error)
}

type TransactionService struct {
	repo TransactionRepository
}

func NewTransactionService(repo TransactionRepository) *TransactionService {
	return &TransactionService{
		repo: repo,
	}
}

func (s *TransactionService) GetByInvoice(ctx context.Context, invoice string) (domain.Transaction, error) {
	trx, err := s.repo.FindByInvoice(ctx, invoice)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.FindByInvoice -> %w", err)
	}

	return trx, nil
}

// ListForCashier pages the cashier's committed sales, newest first.
func (s *TransactionService) ListForCashier(ctx context.Context, cashierID uint, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := s.repo.ListByCashier(ctx, cashierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByCashier -> %w", err)
	}

	return transactions, nil
}

func (s *TransactionService) GetProfits(ctx context.Context, transactionID uint) ([]domain.ProfitRecord, error) {
	profits, err := s.repo.ListProfitsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListProfitsByTransaction -> %w", err)
	}

	return profits, nil
}
