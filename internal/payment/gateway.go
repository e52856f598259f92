package payment

import (
	"context"

	"github.com/vietanh2810/pos-api/internal/domain"
)

// Gateway is the provider-agnostic interface every payment adapter
// implements. The sale is already committed when CreatePayment runs; an
// adapter failure leaves the transaction pending, it never unwinds the sale.
type Gateway interface {
	// CreatePayment registers the committed sale with the provider and
	// returns the provider reference plus the URL the customer pays at.
	CreatePayment(ctx context.Context, trx domain.Transaction, setting domain.GatewaySetting) (*CreatePaymentResult, error)
}

type CreatePaymentResult struct {
	Reference  string
	PaymentURL string
}

// Registry maps gateway keys (as stored in gateway settings) to adapters.
type Registry map[string]Gateway

func (r Registry) Lookup(gateway string) (Gateway, bool) {
	g, ok := r[gateway]
	return g, ok
}

const GatewayStripe = "stripe"

func NewRegistry(successURL, cancelURL string) Registry {
	return Registry{
		GatewayStripe: NewStripeGateway(successURL, cancelURL),
	}
}
