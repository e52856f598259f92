package service

import (
	"crypto/rand"
	"math/big"
)

const invoiceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const defaultInvoiceSuffixLength = 10

// InvoiceGenerator issues human-facing sale identifiers: a fixed prefix
// followed by a fixed-length upper-cased alphanumeric suffix. Suffixes are
// random, so uniqueness is finished off by the unique invoice key at commit
// and a retry in the checkout service.
type InvoiceGenerator struct {
	prefix string
	length int

	randIndex func(max int) int
}

func NewInvoiceGenerator(prefix string) *InvoiceGenerator {
	return &InvoiceGenerator{
		prefix:    prefix,
		length:    defaultInvoiceSuffixLength,
		randIndex: cryptoRandIndex,
	}
}

func (g *InvoiceGenerator) Next() string {
	suffix := make([]byte, g.length)
	for i := range suffix {
		suffix[i] = invoiceAlphabet[g.randIndex(len(invoiceAlphabet))]
	}

	return g.prefix + string(suffix)
}

func cryptoRandIndex(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// crypto/rand only fails when the platform's entropy source is
		// broken; there is no sale to save at that point.
		panic(err)
	}

	return int(n.Int64())
}
