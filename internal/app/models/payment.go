package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimPayment is the claim-level payment record out of one CLP loop,
// attached to the batch it arrived in.
type ClaimPayment struct {
	ID                    string          `json:"id"`
	BatchID               string          `json:"batch_id"`
	ClaimID               string          `json:"claim_id,omitempty"`
	ClaimNumber           string          `json:"claim_number"`
	StatusCode            string          `json:"status_code"`
	TotalCharge           decimal.Decimal `json:"total_charge"`
	PaymentAmount         decimal.Decimal `json:"payment_amount"`
	PatientResponsibility decimal.Decimal `json:"patient_responsibility"`
	PayerControlNumber    string          `json:"payer_control_number"`
	FilingIndicator       string          `json:"filing_indicator"`
	CreatedAt             time.Time       `json:"created_at"`
}

// ServiceLinePayment is one SVC loop under a claim payment.
type ServiceLinePayment struct {
	ID             string          `json:"id"`
	ClaimPaymentID string          `json:"claim_payment_id"`
	ProcedureCode  string          `json:"procedure_code"`
	Modifiers      string          `json:"modifiers,omitempty"`
	ChargeAmount   decimal.Decimal `json:"charge_amount"`
	PaymentAmount  decimal.Decimal `json:"payment_amount"`
	RevenueCode    string          `json:"revenue_code,omitempty"`
	UnitsPaid      string          `json:"units_paid,omitempty"`
	ServiceDate    string          `json:"service_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PaymentAdjustment is one CAS triple. Level distinguishes claim-level
// adjustments from service-line adjustments; ServiceLinePaymentID is set
// only for the latter.
type PaymentAdjustment struct {
	ID                   string          `json:"id"`
	ClaimPaymentID       string          `json:"claim_payment_id"`
	ServiceLinePaymentID string          `json:"service_line_payment_id,omitempty"`
	Level                string          `json:"level"`
	GroupCode            string          `json:"group_code"`
	ReasonCode           string          `json:"reason_code"`
	Amount               decimal.Decimal `json:"amount"`
	Quantity             string          `json:"quantity,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}
