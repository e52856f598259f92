package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Product struct {
	ID uint `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	Barcode string `gorm:"unique;not null"`

	Stock     int     `gorm:"not null"`
	BuyPrice  float64 `gorm:"not null"`
	SellPrice float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindByBarcode(ctx context.Context, barcode string) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, "barcode = ?", barcode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) List(ctx context.Context, limit, offset int) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).
		Order("name asc").
		Limit(limit).
		Offset(offset).
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) DecrementStock(ctx context.Context, productID uint, quantity int) error {
	return decrementStock(d.db.WithContext(ctx), productID, quantity)
}

// decrementStock deducts quantity as a single conditional update, so the
// stock check and the write cannot interleave with a concurrent checkout on
// the same row. Zero rows affected means the remaining stock was too low.
func decrementStock(tx *gorm.DB, productID uint, quantity int) error {
	result := tx.Model(&Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}

		return ErrInsufficientStock
	}

	return nil
}
