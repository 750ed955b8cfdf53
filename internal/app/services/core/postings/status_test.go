package postings

import (
	"testing"

	"clearclaim-service/internal/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveClaimStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode string
		payment    string
		charge     string
		expected   models.ClaimStatus
	}{
		{
			name:       "denial code wins regardless of amounts",
			statusCode: "4",
			payment:    "100.00",
			charge:     "100.00",
			expected:   models.ClaimDenied,
		},
		{
			name:       "reversal code wins regardless of amounts",
			statusCode: "22",
			payment:    "-100.00",
			charge:     "100.00",
			expected:   models.ClaimReversed,
		},
		{
			name:       "zero payment on processed code is denied",
			statusCode: "1",
			payment:    "0",
			charge:     "250.00",
			expected:   models.ClaimDenied,
		},
		{
			name:       "payment below charge is partial",
			statusCode: "1",
			payment:    "180.00",
			charge:     "250.00",
			expected:   models.ClaimPartialPayment,
		},
		{
			name:       "payment equal to charge is paid",
			statusCode: "1",
			payment:    "250.00",
			charge:     "250.00",
			expected:   models.ClaimPaid,
		},
		{
			name:       "secondary processing with full payment is paid",
			statusCode: "2",
			payment:    "250.00",
			charge:     "250.00",
			expected:   models.ClaimPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveClaimStatus(tt.statusCode,
				decimal.RequireFromString(tt.payment),
				decimal.RequireFromString(tt.charge))
			assert.Equal(t, tt.expected, got)
		})
	}
}
