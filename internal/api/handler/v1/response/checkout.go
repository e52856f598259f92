package response

import "github.com/vietanh2810/pos-api/internal/domain"

// CheckoutResponse carries the committed sale. PaymentError is set when the
// gateway hand-off failed after the commit; the sale itself stands.
type CheckoutResponse struct {
	Transaction  domain.Transaction `json:"transaction"`
	PaymentError string             `json:"payment_error,omitempty"`
}

type HoldResponse struct {
	HoldGroupID string `json:"hold_group_id"`
}
