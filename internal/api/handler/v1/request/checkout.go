package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CheckoutRequest struct {
	CustomerID    *uint   `json:"customer_id"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	CashTendered  float64 `json:"cash_tendered"`
	ChangeGiven   float64 `json:"change_given"`
	Discount      float64 `json:"discount"`
	GrandTotal    float64 `json:"grand_total" binding:"required"`
}

func (req *CheckoutRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentMethod, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.GrandTotal, validation.Required, validation.Min(0.0)),
	)
	if err != nil {
		return err
	}

	if req.CashTendered < 0 || req.ChangeGiven < 0 || req.Discount < 0 {
		return fmt.Errorf("amounts must not be negative")
	}

	return nil
}
