package domain

import "time"

const PaymentMethodCash = "cash"

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Transaction is a finalized sale header. It is immutable after the checkout
// commit, except for the payment reference/URL/status written back by the
// gateway hand-off.
type Transaction struct {
	ID            uint                `json:"id"`
	Invoice       string              `json:"invoice"`
	CashierID     uint                `json:"cashier_id"`
	CustomerID    *uint               `json:"customer_id,omitempty"`
	Customer      *Customer           `json:"customer,omitempty"`
	CashTendered  float64             `json:"cash_tendered"`
	Change        float64             `json:"change"`
	Discount      float64             `json:"discount"`
	GrandTotal    float64             `json:"grand_total"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	PaymentRef    *string             `json:"payment_ref,omitempty"`
	PaymentURL    *string             `json:"payment_url,omitempty"`
	Details       []TransactionDetail `json:"details,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// IsCash reports whether the sale settled at the register rather than
// through a payment gateway.
func (t Transaction) IsCash() bool {
	return t.PaymentMethod == PaymentMethodCash
}

// TransactionDetail is one committed sale line, priced at time of sale.
type TransactionDetail struct {
	ID            uint     `json:"id"`
	TransactionID uint     `json:"transaction_id"`
	ProductID     uint     `json:"product_id"`
	Product       *Product `json:"product,omitempty"`
	Quantity      int      `json:"quantity"`
	Price         float64  `json:"price"`
}

// ProfitRecord is one committed line's margin:
// (unit sell price - unit buy price) * quantity.
type ProfitRecord struct {
	ID            uint      `json:"id"`
	TransactionID uint      `json:"transaction_id"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}
