package models

import (
	"github.com/shopspring/decimal"
)

// PostingSummary is the per-batch reconciliation outcome returned after a
// remittance is posted.
type PostingSummary struct {
	BatchID               string          `json:"batch_id"`
	CheckNumber           string          `json:"check_number"`
	PayerName             string          `json:"payer_name"`
	TotalPaymentAmount    decimal.Decimal `json:"total_payment_amount"`
	TotalChargeAmount     decimal.Decimal `json:"total_charge_amount"`
	TotalAdjustmentAmount decimal.Decimal `json:"total_adjustment_amount"`
	ClaimsPosted          int             `json:"claims_posted"`
	ClaimsUnmatched       int             `json:"claims_unmatched"`
	PaidClaims            int             `json:"paid_claims"`
	PartialPaymentClaims  int             `json:"partial_payment_claims"`
	DeniedClaims          int             `json:"denied_claims"`
	ReversedClaims        int             `json:"reversed_claims"`
	Claims                []PostedClaim   `json:"claims"`
	UnmatchedClaims       []string        `json:"unmatched_claims,omitempty"`

	ProviderAdjustments []ProviderAdjustmentReport `json:"provider_adjustments,omitempty"`
	Warnings            []string                   `json:"warnings,omitempty"`
}

// PostedClaim is one claim's reconciliation line inside a posting summary.
type PostedClaim struct {
	ClaimNumber           string          `json:"claim_number"`
	StatusCode            string          `json:"status_code"`
	StatusDescription     string          `json:"status_description"`
	DerivedStatus         ClaimStatus     `json:"derived_status"`
	TotalCharge           decimal.Decimal `json:"total_charge"`
	PaymentAmount         decimal.Decimal `json:"payment_amount"`
	PatientResponsibility decimal.Decimal `json:"patient_responsibility"`
	AdjustmentAmount      decimal.Decimal `json:"adjustment_amount"`

	Adjustments []AdjustmentReport `json:"adjustments,omitempty"`
	Matched     bool               `json:"matched"`
}

// AdjustmentReport is one CAS triple with its group and reason codes
// resolved to readable text.
type AdjustmentReport struct {
	Level             string          `json:"level"`
	GroupCode         string          `json:"group_code"`
	GroupDescription  string          `json:"group_description"`
	ReasonCode        string          `json:"reason_code"`
	ReasonDescription string          `json:"reason_description"`
	Amount            decimal.Decimal `json:"amount"`
	Quantity          string          `json:"quantity,omitempty"`
}

// ProviderAdjustmentReport is one PLB detail with its reason code resolved.
type ProviderAdjustmentReport struct {
	ProviderID        string          `json:"provider_id"`
	FiscalPeriodDate  string          `json:"fiscal_period_date,omitempty"`
	ReasonCode        string          `json:"reason_code"`
	ReasonDescription string          `json:"reason_description"`
	ReferenceID       string          `json:"reference_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
}
