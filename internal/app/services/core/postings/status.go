package postings

import (
	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/edi"

	"github.com/shopspring/decimal"
)

// DeriveClaimStatus maps a CLP status code and payment outcome onto the
// ledger status. Explicit denial and reversal codes win over the amount
// comparison; a zero payment on any other code still counts as denied.
func DeriveClaimStatus(statusCode string, paymentAmount, totalCharge decimal.Decimal) models.ClaimStatus {
	switch statusCode {
	case edi.ClaimStatusDenied:
		return models.ClaimDenied
	case edi.ClaimStatusReversal:
		return models.ClaimReversed
	}
	if paymentAmount.IsZero() {
		return models.ClaimDenied
	}
	if paymentAmount.LessThan(totalCharge) {
		return models.ClaimPartialPayment
	}
	return models.ClaimPaid
}
