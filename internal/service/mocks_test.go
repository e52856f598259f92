package service

import (
	"context"
	"time"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/payment"
)

// mockCartRepo implements CartRepository and CheckoutCartRepository.
type mockCartRepo struct {
	nextID    uint
	created   []domain.CartItem
	createErr error

	updated   []domain.CartItem
	updateErr error

	byID    map[uint]domain.CartItem
	byIDErr error

	byProduct    domain.CartItem
	byProductErr error

	active    []domain.CartItem
	activeErr error

	held      [][]domain.CartItem // one snapshot per FindHeld call
	heldCalls int
	heldErr   error

	deletedIDs []uint
	deleteErr  error

	holdGroupID string
	holdLabel   string
	holdAt      time.Time
	holdErr     error

	resumedGroup string
	resumeErr    error

	clearedGroup string
	clearErr     error
}

func (m *mockCartRepo) Create(_ context.Context, item domain.CartItem) (domain.CartItem, error) {
	if m.createErr != nil {
		return domain.CartItem{}, m.createErr
	}
	m.nextID++
	item.ID = m.nextID
	m.created = append(m.created, item)
	return item, nil
}

func (m *mockCartRepo) Update(_ context.Context, item domain.CartItem) (domain.CartItem, error) {
	if m.updateErr != nil {
		return domain.CartItem{}, m.updateErr
	}
	m.updated = append(m.updated, item)
	return item, nil
}

func (m *mockCartRepo) FindByID(_ context.Context, _, itemID uint) (domain.CartItem, error) {
	if m.byIDErr != nil {
		return domain.CartItem{}, m.byIDErr
	}
	return m.byID[itemID], nil
}

func (m *mockCartRepo) FindByCashierAndProduct(_ context.Context, _, _ uint) (domain.CartItem, error) {
	return m.byProduct, m.byProductErr
}

func (m *mockCartRepo) FindActive(_ context.Context, _ uint) ([]domain.CartItem, error) {
	return m.active, m.activeErr
}

func (m *mockCartRepo) FindHeld(_ context.Context, _ uint) ([]domain.CartItem, error) {
	if m.heldErr != nil {
		return nil, m.heldErr
	}
	if len(m.held) == 0 {
		return nil, nil
	}
	snapshot := m.held[m.heldCalls%len(m.held)]
	m.heldCalls++
	return snapshot, nil
}

func (m *mockCartRepo) Delete(_ context.Context, itemID uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, itemID)
	return nil
}

func (m *mockCartRepo) HoldActive(_ context.Context, _ uint, groupID, label string, heldAt time.Time) error {
	if m.holdErr != nil {
		return m.holdErr
	}
	m.holdGroupID = groupID
	m.holdLabel = label
	m.holdAt = heldAt
	return nil
}

func (m *mockCartRepo) ResumeGroup(_ context.Context, _ uint, groupID string) error {
	if m.resumeErr != nil {
		return m.resumeErr
	}
	m.resumedGroup = groupID
	return nil
}

func (m *mockCartRepo) ClearGroup(_ context.Context, _ uint, groupID string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clearedGroup = groupID
	return nil
}

// mockProductRepo implements CartProductRepository and CatalogProductRepository.
type mockProductRepo struct {
	products map[uint]domain.Product
	err      error

	list    []domain.Product
	listErr error
}

func (m *mockProductRepo) FindByID(_ context.Context, id uint) (domain.Product, error) {
	if m.err != nil {
		return domain.Product{}, m.err
	}
	return m.products[id], nil
}

func (m *mockProductRepo) FindByBarcode(_ context.Context, _ string) (domain.Product, error) {
	if m.err != nil {
		return domain.Product{}, m.err
	}
	for _, p := range m.products {
		return p, nil
	}
	return domain.Product{}, m.err
}

func (m *mockProductRepo) List(_ context.Context, _, _ int) ([]domain.Product, error) {
	return m.list, m.listErr
}

// mockTransactionRepo implements CheckoutTransactionRepository and
// TransactionRepository.
type mockTransactionRepo struct {
	commitErrs  []error // popped one per CommitSale call, nil-padded
	commitCalls int
	committed   []domain.Transaction
	lastLines   []domain.CartItem

	updatedID     uint
	updatedRef    *string
	updatedURL    *string
	updatedStatus string
	updateCalls   int
	updateErr     error

	byInvoice    domain.Transaction
	byInvoiceErr error

	listed  []domain.Transaction
	listErr error

	listedLimit  int
	listedOffset int

	profits    []domain.ProfitRecord
	profitsErr error
}

func (m *mockTransactionRepo) CommitSale(_ context.Context, trx domain.Transaction, lines []domain.CartItem) (domain.Transaction, error) {
	call := m.commitCalls
	m.commitCalls++
	if call < len(m.commitErrs) && m.commitErrs[call] != nil {
		return domain.Transaction{}, m.commitErrs[call]
	}
	trx.ID = uint(m.commitCalls)
	m.committed = append(m.committed, trx)
	m.lastLines = lines
	return trx, nil
}

func (m *mockTransactionRepo) UpdatePayment(_ context.Context, id uint, ref, url *string, status string) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedID = id
	m.updatedRef = ref
	m.updatedURL = url
	m.updatedStatus = status
	return nil
}

func (m *mockTransactionRepo) FindByInvoice(_ context.Context, _ string) (domain.Transaction, error) {
	return m.byInvoice, m.byInvoiceErr
}

func (m *mockTransactionRepo) ListByCashier(_ context.Context, _ uint, limit, offset int) ([]domain.Transaction, error) {
	m.listedLimit = limit
	m.listedOffset = offset
	return m.listed, m.listErr
}

func (m *mockTransactionRepo) ListProfitsByTransaction(_ context.Context, _ uint) ([]domain.ProfitRecord, error) {
	return m.profits, m.profitsErr
}

// mockSettingsRepo implements GatewaySettingsRepository.
type mockSettingsRepo struct {
	byGateway    domain.GatewaySetting
	byGatewayErr error

	def    domain.GatewaySetting
	defErr error

	enabled    []domain.GatewaySetting
	enabledErr error
}

func (m *mockSettingsRepo) FindByGateway(_ context.Context, _ string) (domain.GatewaySetting, error) {
	return m.byGateway, m.byGatewayErr
}

func (m *mockSettingsRepo) FindDefault(_ context.Context) (domain.GatewaySetting, error) {
	return m.def, m.defErr
}

func (m *mockSettingsRepo) FindEnabled(_ context.Context) ([]domain.GatewaySetting, error) {
	return m.enabled, m.enabledErr
}

// mockGateway implements payment.Gateway.
type mockGateway struct {
	result *payment.CreatePaymentResult
	err    error

	gotTrx     domain.Transaction
	gotSetting domain.GatewaySetting
}

func (m *mockGateway) CreatePayment(_ context.Context, trx domain.Transaction, setting domain.GatewaySetting) (*payment.CreatePaymentResult, error) {
	m.gotTrx = trx
	m.gotSetting = setting
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
