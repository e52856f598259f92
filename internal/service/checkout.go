package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/payment"
	"github.com/vietanh2810/pos-api/internal/repository"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentFailed        = errors.New("payment gateway call failed")
)

const maxInvoiceAttempts = 5

type CheckoutTransactionRepository interface {
	CommitSale(ctx context.Context, trx domain.Transaction, lines []domain.CartItem) (domain.Transaction, error)
	UpdatePayment(ctx context.Context, id uint, ref, url *string, status string) error
}

type CheckoutCartRepository interface {
	FindActive(ctx context.Context, cashierID uint) ([]domain.CartItem, error)
}

type GatewaySettingsRepository interface {
	FindByGateway(ctx context.Context, gateway string) (domain.GatewaySetting, error)
	FindDefault(ctx context.Context) (domain.GatewaySetting, error)
	FindEnabled(ctx context.Context) ([]domain.GatewaySetting, error)
}

type CheckoutInput struct {
	CashierID     uint
	CustomerID    *uint
	PaymentMethod string
	CashTendered  float64
	ChangeGiven   float64
	Discount      float64
	GrandTotal    float64
}

// CheckoutService converts a cashier's active cart into a committed sale.
// The monetary commit runs in one database transaction; the gateway call
// happens after it, on its own failure channel, so a slow or broken
// provider can never hold the commit open or unwind a recorded sale.
type CheckoutService struct {
	repo     CheckoutTransactionRepository
	cartRepo CheckoutCartRepository
	settings GatewaySettingsRepository
	gateways payment.Registry
	invoices *InvoiceGenerator

	gatewayTimeout time.Duration
}

func NewCheckoutService(
	repo CheckoutTransactionRepository,
	cartRepo CheckoutCartRepository,
	settings GatewaySettingsRepository,
	gateways payment.Registry,
	invoices *InvoiceGenerator,
	gatewayTimeout time.Duration,
) *CheckoutService {
	return &CheckoutService{
		repo:           repo,
		cartRepo:       cartRepo,
		settings:       settings,
		gateways:       gateways,
		invoices:       invoices,
		gatewayTimeout: gatewayTimeout,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (domain.Transaction, error) {
	var (
		setting domain.GatewaySetting
		gateway payment.Gateway
	)

	if input.PaymentMethod != domain.PaymentMethodCash {
		var err error
		setting, err = s.settings.FindByGateway(ctx, input.PaymentMethod)
		if err != nil {
			if errors.Is(err, repository.ErrGatewayNotFound) {
				return domain.Transaction{}, ErrGatewayNotConfigured
			}

			return domain.Transaction{}, fmt.Errorf("s.settings.FindByGateway -> %w", err)
		}
		if !setting.IsReady() {
			return domain.Transaction{}, ErrGatewayNotConfigured
		}

		var ok bool
		gateway, ok = s.gateways.Lookup(input.PaymentMethod)
		if !ok {
			return domain.Transaction{}, ErrGatewayNotConfigured
		}
	}

	lines, err := s.cartRepo.FindActive(ctx, input.CashierID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.cartRepo.FindActive -> %w", err)
	}
	if len(lines) == 0 {
		return domain.Transaction{}, ErrEmptyCart
	}

	status := domain.PaymentStatusPending
	if input.PaymentMethod == domain.PaymentMethodCash {
		status = domain.PaymentStatusPaid
	}

	var committed domain.Transaction
	for attempt := 0; ; attempt++ {
		committed, err = s.repo.CommitSale(ctx, domain.Transaction{
			Invoice:       s.invoices.Next(),
			CashierID:     input.CashierID,
			CustomerID:    input.CustomerID,
			CashTendered:  input.CashTendered,
			Change:        input.ChangeGiven,
			Discount:      input.Discount,
			GrandTotal:    input.GrandTotal,
			PaymentMethod: input.PaymentMethod,
			PaymentStatus: status,
		}, lines)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrInvoiceExists) && attempt < maxInvoiceAttempts-1 {
			continue
		}

		return domain.Transaction{}, fmt.Errorf("s.repo.CommitSale -> %w", err)
	}

	if gateway == nil {
		return committed, nil
	}

	// The sale is recorded; from here on failures are reported to the
	// caller but the transaction stays committed as pending.
	gatewayCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	result, err := gateway.CreatePayment(gatewayCtx, committed, setting)
	if err != nil {
		zap.L().Warn("payment gateway call failed after sale commit",
			zap.String("invoice", committed.Invoice),
			zap.String("gateway", input.PaymentMethod),
			zap.Error(err))

		return committed, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	err = s.repo.UpdatePayment(ctx, committed.ID, &result.Reference, &result.PaymentURL, domain.PaymentStatusPending)
	if err != nil {
		return committed, fmt.Errorf("s.repo.UpdatePayment -> %w", err)
	}

	committed.PaymentRef = &result.Reference
	committed.PaymentURL = &result.PaymentURL

	return committed, nil
}

// DefaultGateway exposes the configured default provider key.
func (s *CheckoutService) DefaultGateway(ctx context.Context) (domain.GatewaySetting, error) {
	setting, err := s.settings.FindDefault(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrGatewayNotFound) {
			return domain.GatewaySetting{}, ErrGatewayNotConfigured
		}

		return domain.GatewaySetting{}, fmt.Errorf("s.settings.FindDefault -> %w", err)
	}

	return setting, nil
}

func (s *CheckoutService) EnabledGateways(ctx context.Context) ([]domain.GatewaySetting, error) {
	settings, err := s.settings.FindEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.settings.FindEnabled -> %w", err)
	}

	return settings, nil
}
