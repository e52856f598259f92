package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/vietanh2810/pos-api/internal/domain"
)

// StripeGateway settles a sale through a Stripe Checkout session. The
// session amount is the sale's grand total; the invoice rides along as the
// client reference so webhooks can be matched back to the sale.
type StripeGateway struct {
	successURL string
	cancelURL  string
}

func NewStripeGateway(successURL, cancelURL string) *StripeGateway {
	return &StripeGateway{
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (g *StripeGateway) CreatePayment(ctx context.Context, trx domain.Transaction, setting domain.GatewaySetting) (*CreatePaymentResult, error) {
	sc := &client.API{}
	sc.Init(setting.SecretKey, nil)

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(trx.Invoice),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Invoice " + trx.Invoice),
					},
					// Stripe amounts are in the currency's smallest unit.
					UnitAmount: stripe.Int64(int64(trx.GrandTotal * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	sess, err := sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("sc.CheckoutSessions.New -> %w", err)
	}

	return &CreatePaymentResult{
		Reference:  sess.ID,
		PaymentURL: sess.URL,
	}, nil
}
