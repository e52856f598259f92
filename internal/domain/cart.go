package domain

import "time"

// CartItem is one sellable line pending sale, owned by a single cashier.
// Price caches Quantity times the product's sell price at the last mutation.
type CartItem struct {
	ID          uint       `json:"id"`
	CashierID   uint       `json:"cashier_id"`
	ProductID   uint       `json:"product_id"`
	Product     Product    `json:"product"`
	Quantity    int        `json:"quantity"`
	Price       float64    `json:"price"`
	HoldGroupID *string    `json:"hold_group_id,omitempty"`
	HoldLabel   *string    `json:"hold_label,omitempty"`
	HeldAt      *time.Time `json:"held_at,omitempty"`
}

// IsActive reports whether the line belongs to the in-progress sale.
// A line is active exactly when it carries no hold group id.
func (ci CartItem) IsActive() bool {
	return ci.HoldGroupID == nil
}

// IsInGroup reports whether the line was parked under the given hold group.
func (ci CartItem) IsInGroup(groupID string) bool {
	return ci.HoldGroupID != nil && *ci.HoldGroupID == groupID
}

// HeldGroup is a parked sale, derived from the cart lines sharing a hold
// group id. It is resumed or cleared as a unit.
type HeldGroup struct {
	GroupID   string     `json:"group_id"`
	Label     string     `json:"label"`
	HeldAt    time.Time  `json:"held_at"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	Items     []CartItem `json:"items"`
}
