package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository"
)

func TestGetByInvoice_NotFound(t *testing.T) {
	repo := &mockTransactionRepo{byInvoiceErr: repository.ErrTransactionNotFound}
	svc := NewTransactionService(repo)

	_, err := svc.GetByInvoice(context.Background(), "INV-MISSING")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestListForCashier_ClampsPaging(t *testing.T) {
	repo := &mockTransactionRepo{
		listed: []domain.Transaction{{ID: 1, Invoice: "INV-A"}},
	}
	svc := NewTransactionService(repo)

	list, err := svc.ListForCashier(context.Background(), 1, 0, -5)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, defaultHistoryLimit, repo.listedLimit)
	assert.Equal(t, 0, repo.listedOffset)

	_, err = svc.ListForCashier(context.Background(), 1, 500, 10)

	require.NoError(t, err)
	assert.Equal(t, maxHistoryLimit, repo.listedLimit)
	assert.Equal(t, 10, repo.listedOffset)
}
