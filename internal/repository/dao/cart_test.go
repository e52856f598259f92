package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartDAO_HoldResumeRoundTrip(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 2, Price: 5.0})

	d := NewCartDAO(testDB)
	heldAt := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, d.HoldActive(ctx, 1, "g-1", "table 4", heldAt))

	active, err := d.FindActive(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, active)

	held, err := d.FindHeld(ctx, 1)
	require.NoError(t, err)
	require.Len(t, held, 1)
	require.NotNil(t, held[0].HoldGroupID)
	assert.Equal(t, "g-1", *held[0].HoldGroupID)
	require.NotNil(t, held[0].HoldLabel)
	assert.Equal(t, "table 4", *held[0].HoldLabel)

	require.NoError(t, d.ResumeGroup(ctx, 1, "g-1"))

	active, err = d.FindActive(ctx, 1)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Nil(t, active[0].HoldGroupID)
	assert.Nil(t, active[0].HoldLabel)
	assert.Nil(t, active[0].HeldAt)
}

func TestCartDAO_HoldActive_EmptyCart(t *testing.T) {
	truncateAll(t)

	err := NewCartDAO(testDB).HoldActive(context.Background(), 1, "g-1", "", time.Now())

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCartDAO_ResumeGroup_ActiveCartConflict(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})

	d := NewCartDAO(testDB)
	require.NoError(t, d.HoldActive(ctx, 1, "g-1", "", time.Now()))

	// A new active line appears before the resume.
	other := seedProduct(t, Product{Name: "Latte", Barcode: "L-1", Stock: 10, SellPrice: 3.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: other.ID, Quantity: 1, Price: 3.5})

	err := d.ResumeGroup(ctx, 1, "g-1")

	assert.ErrorIs(t, err, ErrActiveCartConflict)

	// The parked sale stays parked.
	held, err := d.FindHeld(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, held, 1)
}

func TestCartDAO_ResumeGroup_NotFound(t *testing.T) {
	truncateAll(t)

	err := NewCartDAO(testDB).ResumeGroup(context.Background(), 1, "missing")

	assert.ErrorIs(t, err, ErrHoldGroupNotFound)
}

func TestCartDAO_ClearGroup(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})

	d := NewCartDAO(testDB)
	require.NoError(t, d.HoldActive(ctx, 1, "g-1", "", time.Now()))
	require.NoError(t, d.ClearGroup(ctx, 1, "g-1"))

	held, err := d.FindHeld(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, held)

	err = d.ClearGroup(ctx, 1, "g-1")
	assert.ErrorIs(t, err, ErrHoldGroupNotFound)
}

func TestCartDAO_FindByCashierAndProduct_MatchesHeldLine(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})

	d := NewCartDAO(testDB)
	require.NoError(t, d.HoldActive(ctx, 1, "g-1", "", time.Now()))

	item, err := d.FindByCashierAndProduct(ctx, 1, product.ID)

	require.NoError(t, err)
	require.NotNil(t, item.HoldGroupID)
	assert.Equal(t, "g-1", *item.HoldGroupID)
}

func TestCartDAO_FindByID_ScopedToCashier(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()

	product := seedProduct(t, Product{Name: "Espresso", Barcode: "E-1", Stock: 10, SellPrice: 2.5})
	item := seedCartItem(t, CartItem{CashierID: 1, ProductID: product.ID, Quantity: 1, Price: 2.5})

	d := NewCartDAO(testDB)

	_, err := d.FindByID(ctx, 2, item.ID)

	assert.ErrorIs(t, err, ErrCartItemNotFound)
}
