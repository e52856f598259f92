package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

var (
	ErrInvoiceExists       = dao.ErrInvoiceExists
	ErrTransactionNotFound = dao.ErrTransactionNotFound
)

type TransactionRepository struct {
	dao *dao.TransactionDAO
}

func NewTransactionRepository(transactionDAO *dao.TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: transactionDAO,
	}
}

func (r *TransactionRepository) domainToDao(t domain.Transaction) dao.Transaction {
	return dao.Transaction{
		ID:            t.ID,
		Invoice:       t.Invoice,
		CashierID:     t.CashierID,
		CustomerID:    t.CustomerID,
		CashTendered:  t.CashTendered,
		Change:        t.Change,
		Discount:      t.Discount,
		GrandTotal:    t.GrandTotal,
		PaymentMethod: t.PaymentMethod,
		PaymentStatus: t.PaymentStatus,
		PaymentRef:    t.PaymentRef,
		PaymentURL:    t.PaymentURL,
	}
}

func (r *TransactionRepository) daoToDomain(t dao.Transaction) domain.Transaction {
	trx := domain.Transaction{
		ID:            t.ID,
		Invoice:       t.Invoice,
		CashierID:     t.CashierID,
		CustomerID:    t.CustomerID,
		CashTendered:  t.CashTendered,
		Change:        t.Change,
		Discount:      t.Discount,
		GrandTotal:    t.GrandTotal,
		PaymentMethod: t.PaymentMethod,
		PaymentStatus: t.PaymentStatus,
		PaymentRef:    t.PaymentRef,
		PaymentURL:    t.PaymentURL,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}

	if t.Customer != nil {
		customer := customerDaoToDomain(*t.Customer)
		trx.Customer = &customer
	}

	if len(t.Details) > 0 {
		trx.Details = make([]domain.TransactionDetail, len(t.Details))
		for i, d := range t.Details {
			trx.Details[i] = domain.TransactionDetail{
				ID:            d.ID,
				TransactionID: d.TransactionID,
				ProductID:     d.ProductID,
				Quantity:      d.Quantity,
				Price:         d.Price,
			}
		}
	}

	return trx
}

func (r *TransactionRepository) cartDomainToDao(items []domain.CartItem) []dao.CartItem {
	converted := make([]dao.CartItem, len(items))
	for i, item := range items {
		converted[i] = dao.CartItem{
			ID:        item.ID,
			CashierID: item.CashierID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return converted
}

func (r *TransactionRepository) CommitSale(ctx context.Context, trx domain.Transaction, lines []domain.CartItem) (domain.Transaction, error) {
	committed, err := r.dao.CommitSale(ctx, r.domainToDao(trx), r.cartDomainToDao(lines))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.CommitSale -> %w", err)
	}

	return r.daoToDomain(committed), nil
}

func (r *TransactionRepository) FindByInvoice(ctx context.Context, invoice string) (domain.Transaction, error) {
	trx, err := r.dao.FindByInvoice(ctx, invoice)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.FindByInvoice -> %w", err)
	}

	return r.daoToDomain(trx), nil
}

func (r *TransactionRepository) ListByCashier(ctx context.Context, cashierID uint, limit, offset int) ([]domain.Transaction, error) {
	transactions, err := r.dao.ListByCashier(ctx, cashierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByCashier -> %w", err)
	}

	converted := make([]domain.Transaction, len(transactions))
	for i, t := range transactions {
		converted[i] = r.daoToDomain(t)
	}

	return converted, nil
}

func (r *TransactionRepository) UpdatePayment(ctx context.Context, id uint, ref, url *string, status string) error {
	if err := r.dao.UpdatePayment(ctx, id, ref, url, status); err != nil {
		return fmt.Errorf("r.dao.UpdatePayment -> %w", err)
	}

	return nil
}

func (r *TransactionRepository) ListProfitsByTransaction(ctx context.Context, transactionID uint) ([]domain.ProfitRecord, error) {
	profits, err := r.dao.ListProfitsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListProfitsByTransaction -> %w", err)
	}

	converted := make([]domain.ProfitRecord, len(profits))
	for i, p := range profits {
		converted[i] = domain.ProfitRecord{
			ID:            p.ID,
			TransactionID: p.TransactionID,
			Total:         p.Total,
			CreatedAt:     p.CreatedAt,
		}
	}

	return converted, nil
}
