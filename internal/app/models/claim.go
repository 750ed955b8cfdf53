package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClaimStatus string

const (
	ClaimSubmitted      ClaimStatus = "submitted"
	ClaimPaid           ClaimStatus = "paid"
	ClaimPartialPayment ClaimStatus = "partial_payment"
	ClaimDenied         ClaimStatus = "denied"
	ClaimReversed       ClaimStatus = "reversed"
)

// Claim is a billed claim tracked for reconciliation. BilledAmount is what
// went out on the 837; PaidAmount accumulates across remittances.
type Claim struct {
	ID                   string          `json:"id"`
	ClaimNumber          string          `json:"claim_number"`
	PatientName          string          `json:"patient_name"`
	PatientID            string          `json:"patient_id"`
	PayerID              string          `json:"payer_id"`
	RenderingProviderNPI string          `json:"rendering_provider_npi,omitempty"`
	BilledAmount         decimal.Decimal `json:"billed_amount"`
	PaidAmount           decimal.Decimal `json:"paid_amount"`
	Status               ClaimStatus     `json:"status"`
	ServicePeriodStart   string          `json:"service_period_start,omitempty"`
	ServicePeriodEnd     string          `json:"service_period_end,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
