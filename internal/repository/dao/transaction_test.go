package dao

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, product Product) Product {
	t.Helper()

	created, err := NewProductDAO(testDB).Insert(context.Background(), product)
	require.NoError(t, err)

	return created
}

func seedCartItem(t *testing.T, item CartItem) CartItem {
	t.Helper()

	created, err := NewCartDAO(testDB).Insert(context.Background(), item)
	require.NoError(t, err)

	return created
}

func TestTransactionDAO_CommitSale(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, BuyPrice: 1.0, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 4, Price: 10.0})

	customer, err := NewCustomerDAO(testDB).Insert(ctx, Customer{Name: "Walk-in", Phone: "555-0101"})
	require.NoError(t, err)

	d := NewTransactionDAO(testDB)
	lines, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)

	trx, err := d.CommitSale(ctx, Transaction{
		Invoice:       "INV-COMMIT0001",
		CashierID:     1,
		CustomerID:    &customer.ID,
		CashTendered:  10.0,
		GrandTotal:    10.0,
		PaymentMethod: "cash",
		PaymentStatus: "paid",
	}, lines)

	require.NoError(t, err)
	assert.NotZero(t, trx.ID)
	require.NotNil(t, trx.Customer)
	assert.Equal(t, "Walk-in", trx.Customer.Name)
	require.Len(t, trx.Details, 1)
	assert.Equal(t, 4, trx.Details[0].Quantity)
	assert.Equal(t, 10.0, trx.Details[0].Price)

	// Stock is decremented and the active cart is gone.
	after, err := NewProductDAO(testDB).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, after.Stock)

	active, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, active)

	// One margin record per line: (2.5 - 1.0) * 4.
	profits, err := d.ListProfitsByTransaction(ctx, trx.ID)
	require.NoError(t, err)
	require.Len(t, profits, 1)
	assert.Equal(t, 6.0, profits[0].Total)
}

func TestTransactionDAO_CommitSale_LeavesHeldLines(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})

	groupID := "g-1"
	label := "table 4"
	other := seedProduct(t, Product{Name: "Latte", Barcode: "L-1", Stock: 10, SellPrice: 3.5})
	held := seedCartItem(t, CartItem{CashierID: 1, ProductID: other.ID, Quantity: 2, Price: 7.0})
	err := testDB.Model(&CartItem{}).Where("id = ?", held.ID).
		Updates(map[string]interface{}{"hold_group_id": groupID, "hold_label": label}).Error
	require.NoError(t, err)

	lines, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)

	_, err = NewTransactionDAO(testDB).CommitSale(ctx, Transaction{
		Invoice:       "INV-COMMIT0002",
		CashierID:     1,
		PaymentMethod: "cash",
		PaymentStatus: "paid",
	}, lines)
	require.NoError(t, err)

	heldAfter, err := NewCartDAO(testDB).FindHeld(ctx, 1)
	require.NoError(t, err)
	require.Len(t, heldAfter, 1)
	assert.Equal(t, held.ID, heldAfter[0].ID)
}

func TestTransactionDAO_CommitSale_DuplicateInvoice(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})
	seedCartItem(t, CartItem{CashierID: 2, ProductID: product.ID, Quantity: 1, Price: 2.5})

	d := NewTransactionDAO(testDB)

	lines, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)
	_, err = d.CommitSale(ctx, Transaction{
		Invoice: "INV-DUP", CashierID: 1, PaymentMethod: "cash", PaymentStatus: "paid",
	}, lines)
	require.NoError(t, err)

	lines, err = NewCartDAO(testDB).FindActive(ctx, 2)
	require.NoError(t, err)
	_, err = d.CommitSale(ctx, Transaction{
		Invoice: "INV-DUP", CashierID: 2, PaymentMethod: "cash", PaymentStatus: "paid",
	}, lines)

	assert.ErrorIs(t, err, ErrInvoiceExists)
}

func TestTransactionDAO_CommitSale_InsufficientStockRollsBack(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 2, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 3, Price: 7.5})

	lines, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)

	_, err = NewTransactionDAO(testDB).CommitSale(ctx, Transaction{
		Invoice: "INV-SHORT", CashierID: 1, PaymentMethod: "cash", PaymentStatus: "paid",
	}, lines)

	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing landed: no transaction row, stock and cart untouched.
	_, err = NewTransactionDAO(testDB).FindByInvoice(ctx, "INV-SHORT")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	after, err := NewProductDAO(testDB).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Stock)

	active, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestTransactionDAO_UpdatePayment(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})

	d := NewTransactionDAO(testDB)
	lines, err := NewCartDAO(testDB).FindActive(ctx, 1)
	require.NoError(t, err)
	trx, err := d.CommitSale(ctx, Transaction{
		Invoice: "INV-PAY", CashierID: 1, PaymentMethod: "stripe", PaymentStatus: "pending",
	}, lines)
	require.NoError(t, err)

	ref := "cs_test_123"
	url := "https://pay.example.com/cs_test_123"
	err = d.UpdatePayment(ctx, trx.ID, &ref, &url, "pending")
	require.NoError(t, err)

	got, err := d.FindByInvoice(ctx, "INV-PAY")
	require.NoError(t, err)
	require.NotNil(t, got.PaymentRef)
	assert.Equal(t, ref, *got.PaymentRef)
	require.NotNil(t, got.PaymentURL)
	assert.Equal(t, url, *got.PaymentURL)
}

func TestDecrementStock_ConcurrentLastUnit(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 1, SellPrice: 2.5})
	d := NewProductDAO(testDB)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = d.DecrementStock(ctx, product.ID, 1)
		}()
	}
	wg.Wait()

	// Exactly one of the two takes the last unit.
	var failed int
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrInsufficientStock)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	after, err := d.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Stock)
}
