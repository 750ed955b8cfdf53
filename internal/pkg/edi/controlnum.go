package edi

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	interchangeControlWidth = 9
	transactionControlWidth = 4
)

// randomControlNumber draws a random numeric control number rendered
// zero-padded to the given width.
func randomControlNumber(width int) string {
	limit := big.NewInt(1)
	for i := 0; i < width; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		n = big.NewInt(1)
	}
	return fmt.Sprintf("%0*d", width, n)
}

func formatTransactionControlNumber(seq int) string {
	return fmt.Sprintf("%0*d", transactionControlWidth, seq)
}
