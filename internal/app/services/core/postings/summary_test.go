package postings

import (
	"testing"

	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/edi"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimAdjustmentReports(t *testing.T) {
	claim := &edi.RemitClaim{
		ClaimNumber: "CLM001",
		Adjustments: []edi.Adjustment{
			{GroupCode: "CO", ReasonCode: "45", Amount: decimal.NewFromInt(80)},
		},
		ServiceLines: []edi.ServiceLine{
			{
				ProcedureCode: "H2019",
				Adjustments: []edi.Adjustment{
					{GroupCode: "PR", ReasonCode: "1", Amount: decimal.NewFromInt(20), Quantity: "1"},
				},
			},
		},
	}

	reports, total := claimAdjustmentReports(claim)
	require.Len(t, reports, 2)
	assert.Equal(t, "100.00", total.StringFixed(2))

	assert.Equal(t, constvars.AdjustmentLevelClaim, reports[0].Level)
	assert.Equal(t, "CO", reports[0].GroupCode)
	assert.Equal(t, "Contractual Obligation", reports[0].GroupDescription)
	assert.Equal(t, "45", reports[0].ReasonCode)
	assert.Contains(t, reports[0].ReasonDescription, "fee schedule")

	assert.Equal(t, constvars.AdjustmentLevelService, reports[1].Level)
	assert.Equal(t, "Patient Responsibility", reports[1].GroupDescription)
	assert.Equal(t, "1", reports[1].ReasonCode)
	assert.Equal(t, "1", reports[1].Quantity)
}

func TestClaimAdjustmentReportsUnknownCodes(t *testing.T) {
	claim := &edi.RemitClaim{
		Adjustments: []edi.Adjustment{
			{GroupCode: "ZZ", ReasonCode: "999", Amount: decimal.NewFromInt(5)},
		},
	}

	reports, total := claimAdjustmentReports(claim)
	require.Len(t, reports, 1)
	assert.Equal(t, "5.00", total.StringFixed(2))
	assert.Equal(t, "Group ZZ", reports[0].GroupDescription)
	assert.Equal(t, "Reason 999", reports[0].ReasonDescription)
}

func TestProviderAdjustmentReports(t *testing.T) {
	plb := &edi.ProviderAdjustment{
		ProviderID:       "1234567890",
		FiscalPeriodDate: "20241231",
		Details: []edi.ProviderAdjustmentDetail{
			{ReasonCode: "WO", ReferenceID: "CLM050", Amount: decimal.NewFromInt(75)},
		},
	}

	reports := providerAdjustmentReports(plb)
	require.Len(t, reports, 1)
	assert.Equal(t, "1234567890", reports[0].ProviderID)
	assert.Equal(t, "20241231", reports[0].FiscalPeriodDate)
	assert.Equal(t, "WO", reports[0].ReasonCode)
	assert.NotEmpty(t, reports[0].ReasonDescription)
	assert.NotEqual(t, "Reason WO", reports[0].ReasonDescription)
	assert.Equal(t, "CLM050", reports[0].ReferenceID)
}

func TestTallyDerivedStatus(t *testing.T) {
	summary := &models.PostingSummary{}

	tallyDerivedStatus(summary, models.ClaimPaid)
	tallyDerivedStatus(summary, models.ClaimPaid)
	tallyDerivedStatus(summary, models.ClaimPartialPayment)
	tallyDerivedStatus(summary, models.ClaimDenied)
	tallyDerivedStatus(summary, models.ClaimReversed)

	assert.Equal(t, 2, summary.PaidClaims)
	assert.Equal(t, 1, summary.PartialPaymentClaims)
	assert.Equal(t, 1, summary.DeniedClaims)
	assert.Equal(t, 1, summary.ReversedClaims)
}
