package postings

import (
	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/edi"

	"github.com/shopspring/decimal"
)

// claimAdjustmentReports flattens a claim's CAS triples, claim level first
// then per service line, resolving group and reason codes to readable text.
// The returned total covers both levels.
func claimAdjustmentReports(claim *edi.RemitClaim) ([]models.AdjustmentReport, decimal.Decimal) {
	var reports []models.AdjustmentReport
	total := decimal.Zero

	for _, adj := range claim.Adjustments {
		reports = append(reports, adjustmentReport(constvars.AdjustmentLevelClaim, &adj))
		total = total.Add(adj.Amount)
	}
	for i := range claim.ServiceLines {
		for _, adj := range claim.ServiceLines[i].Adjustments {
			reports = append(reports, adjustmentReport(constvars.AdjustmentLevelService, &adj))
			total = total.Add(adj.Amount)
		}
	}
	return reports, total
}

func adjustmentReport(level string, adj *edi.Adjustment) models.AdjustmentReport {
	return models.AdjustmentReport{
		Level:             level,
		GroupCode:         adj.GroupCode,
		GroupDescription:  edi.DescribeAdjustmentGroup(adj.GroupCode),
		ReasonCode:        adj.ReasonCode,
		ReasonDescription: edi.DescribeAdjustmentReason(adj.ReasonCode),
		Amount:            adj.Amount,
		Quantity:          adj.Quantity,
	}
}

func providerAdjustmentReports(plb *edi.ProviderAdjustment) []models.ProviderAdjustmentReport {
	reports := make([]models.ProviderAdjustmentReport, 0, len(plb.Details))
	for _, detail := range plb.Details {
		reports = append(reports, models.ProviderAdjustmentReport{
			ProviderID:        plb.ProviderID,
			FiscalPeriodDate:  plb.FiscalPeriodDate,
			ReasonCode:        detail.ReasonCode,
			ReasonDescription: edi.DescribeProviderAdjustmentReason(detail.ReasonCode),
			ReferenceID:       detail.ReferenceID,
			Amount:            detail.Amount,
		})
	}
	return reports
}

// tallyDerivedStatus rolls one claim's derived status into the batch counts.
func tallyDerivedStatus(summary *models.PostingSummary, status models.ClaimStatus) {
	switch status {
	case models.ClaimPaid:
		summary.PaidClaims++
	case models.ClaimPartialPayment:
		summary.PartialPaymentClaims++
	case models.ClaimDenied:
		summary.DeniedClaims++
	case models.ClaimReversed:
		summary.ReversedClaims++
	}
}
