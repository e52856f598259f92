package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrActiveCartConflict = errors.New("cashier already has an active cart")
	ErrHoldGroupNotFound  = errors.New("hold group not found")
)

// CartItem rows with a NULL hold_group_id form the cashier's active cart;
// rows sharing a non-NULL hold_group_id form one parked sale.
type CartItem struct {
	ID uint `gorm:"primaryKey"`

	CashierID uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null"`
	Product   Product `gorm:"foreignKey:ProductID"`

	Quantity int     `gorm:"not null"`
	Price    float64 `gorm:"not null"`

	HoldGroupID *string `gorm:"index"`
	HoldLabel   *string
	HeldAt      *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CartDAO struct {
	db *gorm.DB
}

func NewCartDAO(db *gorm.DB) *CartDAO {
	return &CartDAO{
		db: db,
	}
}

func (d *CartDAO) Insert(ctx context.Context, item CartItem) (CartItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return CartItem{}, result.Error
	}

	return item, nil
}

func (d *CartDAO) Update(ctx context.Context, item CartItem) (CartItem, error) {
	result := d.db.WithContext(ctx).Save(&item)
	if result.Error != nil {
		return CartItem{}, result.Error
	}

	return item, nil
}

func (d *CartDAO) FindByID(ctx context.Context, cashierID, itemID uint) (CartItem, error) {
	var item CartItem

	result := d.db.WithContext(ctx).
		Preload("Product").
		First(&item, "id = ? AND cashier_id = ?", itemID, cashierID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CartItem{}, ErrCartItemNotFound
		}

		return CartItem{}, result.Error
	}

	return item, nil
}

// FindByCashierAndProduct matches the cashier's existing line for a product
// regardless of hold status, so an add can merge into a parked line.
func (d *CartDAO) FindByCashierAndProduct(ctx context.Context, cashierID, productID uint) (CartItem, error) {
	var item CartItem

	result := d.db.WithContext(ctx).
		First(&item, "cashier_id = ? AND product_id = ?", cashierID, productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CartItem{}, ErrCartItemNotFound
		}

		return CartItem{}, result.Error
	}

	return item, nil
}

func (d *CartDAO) FindActive(ctx context.Context, cashierID uint) ([]CartItem, error) {
	var items []CartItem

	result := d.db.WithContext(ctx).
		Preload("Product").
		Where("cashier_id = ? AND hold_group_id IS NULL", cashierID).
		Order("id asc").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *CartDAO) FindHeld(ctx context.Context, cashierID uint) ([]CartItem, error) {
	var items []CartItem

	result := d.db.WithContext(ctx).
		Preload("Product").
		Where("cashier_id = ? AND hold_group_id IS NOT NULL", cashierID).
		Order("held_at asc, id asc").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *CartDAO) Delete(ctx context.Context, itemID uint) error {
	result := d.db.WithContext(ctx).Delete(&CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// HoldActive parks every active line of the cashier under the given group
// in a single update, so the group can never be half-held.
func (d *CartDAO) HoldActive(ctx context.Context, cashierID uint, groupID, label string, heldAt time.Time) error {
	result := d.db.WithContext(ctx).Model(&CartItem{}).
		Where("cashier_id = ? AND hold_group_id IS NULL", cashierID).
		Updates(map[string]interface{}{
			"hold_group_id": groupID,
			"hold_label":    label,
			"held_at":       heldAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmptyCart
	}

	return nil
}

// ResumeGroup reactivates a parked sale. It refuses to merge into an
// existing active cart; the active check and the group update run in one
// transaction so a concurrent double-submit cannot slip between them.
func (d *CartDAO) ResumeGroup(ctx context.Context, cashierID uint, groupID string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activeCount int64
		err := tx.Model(&CartItem{}).
			Where("cashier_id = ? AND hold_group_id IS NULL", cashierID).
			Count(&activeCount).Error
		if err != nil {
			return err
		}
		if activeCount > 0 {
			return ErrActiveCartConflict
		}

		result := tx.Model(&CartItem{}).
			Where("cashier_id = ? AND hold_group_id = ?", cashierID, groupID).
			Updates(map[string]interface{}{
				"hold_group_id": nil,
				"hold_label":    nil,
				"held_at":       nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrHoldGroupNotFound
		}

		return nil
	})
}

func (d *CartDAO) ClearGroup(ctx context.Context, cashierID uint, groupID string) error {
	result := d.db.WithContext(ctx).
		Where("cashier_id = ? AND hold_group_id = ?", cashierID, groupID).
		Delete(&CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHoldGroupNotFound
	}

	return nil
}
