package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceGenerator_Next(t *testing.T) {
	gen := NewInvoiceGenerator("INV-")

	invoice := gen.Next()

	require.True(t, strings.HasPrefix(invoice, "INV-"))
	suffix := strings.TrimPrefix(invoice, "INV-")
	assert.Len(t, suffix, defaultInvoiceSuffixLength)
	for _, c := range suffix {
		assert.Contains(t, invoiceAlphabet, string(c))
	}
}

func TestInvoiceGenerator_UsesRandSource(t *testing.T) {
	gen := NewInvoiceGenerator("INV-")
	gen.randIndex = func(_ int) int { return 0 }

	assert.Equal(t, "INV-AAAAAAAAAA", gen.Next())

	gen.randIndex = func(max int) int { return max - 1 }

	assert.Equal(t, "INV-9999999999", gen.Next())
}
