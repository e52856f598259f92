package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvoiceExists       = errors.New("invoice already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type Transaction struct {
	ID uint `gorm:"primaryKey"`

	Invoice   string `gorm:"unique;not null"`
	CashierID uint   `gorm:"not null;index"`

	CustomerID *uint
	Customer   *Customer `gorm:"foreignKey:CustomerID"`

	CashTendered float64 `gorm:"not null"`
	Change       float64 `gorm:"not null"`
	Discount     float64 `gorm:"not null"`
	GrandTotal   float64 `gorm:"not null"`

	PaymentMethod string `gorm:"not null"`
	PaymentStatus string `gorm:"not null"`
	PaymentRef    *string
	PaymentURL    *string

	Details []TransactionDetail `gorm:"foreignKey:TransactionID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TransactionDetail struct {
	ID uint `gorm:"primaryKey"`

	TransactionID uint    `gorm:"not null;index"`
	ProductID     uint    `gorm:"not null"`
	Product       Product `gorm:"foreignKey:ProductID"`

	Quantity int     `gorm:"not null"`
	Price    float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type ProfitRecord struct {
	ID uint `gorm:"primaryKey"`

	TransactionID uint    `gorm:"not null;index"`
	Total         float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

// CommitSale converts the cashier's active cart lines into a sale in one
// database transaction: header, details, profit records, stock decrements
// and the cart delete all land together or not at all.
func (d *TransactionDAO) CommitSale(ctx context.Context, trx Transaction, lines []CartItem) (Transaction, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trx).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) &&
				pgErr.Code == pgerrcode.UniqueViolation &&
				strings.Contains(pgErr.Message, `unique constraint "uni_transactions_invoice"`) {
				return ErrInvoiceExists
			}

			return err
		}

		for _, line := range lines {
			// Prices are frozen from the cart line; margins use the
			// product's buy price as of the commit.
			var product Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}

				return err
			}

			detail := TransactionDetail{
				TransactionID: trx.ID,
				ProductID:     line.ProductID,
				Quantity:      line.Quantity,
				Price:         line.Price,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}

			profit := ProfitRecord{
				TransactionID: trx.ID,
				Total:         (product.SellPrice - product.BuyPrice) * float64(line.Quantity),
			}
			if err := tx.Create(&profit).Error; err != nil {
				return err
			}

			if err := decrementStock(tx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		result := tx.
			Where("cashier_id = ? AND hold_group_id IS NULL", trx.CashierID).
			Delete(&CartItem{})
		if result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		return Transaction{}, err
	}

	return d.FindByID(ctx, trx.ID)
}

func (d *TransactionDAO) FindByID(ctx context.Context, id uint) (Transaction, error) {
	var trx Transaction

	result := d.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		First(&trx, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return trx, nil
}

func (d *TransactionDAO) FindByInvoice(ctx context.Context, invoice string) (Transaction, error) {
	var trx Transaction

	result := d.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		First(&trx, "invoice = ?", invoice)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return trx, nil
}

func (d *TransactionDAO) ListByCashier(ctx context.Context, cashierID uint, limit, offset int) ([]Transaction, error) {
	var transactions []Transaction

	result := d.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Where("cashier_id = ?", cashierID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// UpdatePayment writes back the gateway hand-off outcome. Only the payment
// reference, URL and status are mutable after the commit.
func (d *TransactionDAO) UpdatePayment(ctx context.Context, id uint, ref, url *string, status string) error {
	result := d.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_ref":    ref,
			"payment_url":    url,
			"payment_status": status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (d *TransactionDAO) ListProfitsByTransaction(ctx context.Context, transactionID uint) ([]ProfitRecord, error) {
	var profits []ProfitRecord

	result := d.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id asc").
		Find(&profits)
	if result.Error != nil {
		return nil, result.Error
	}

	return profits, nil
}
