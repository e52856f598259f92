package domain

import "time"

type Product struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Barcode   string    `json:"barcode"`
	Stock     int       `json:"stock"`
	BuyPrice  float64   `json:"buy_price"`
	SellPrice float64   `json:"sell_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
