package responses

import (
	"clearclaim-service/internal/app/models"
)

// PostingReport is returned after a remittance is posted: the reconciliation
// summary plus the archive location of the raw file.
type PostingReport struct {
	Summary           *models.PostingSummary `json:"summary"`
	ArchiveObjectName string                 `json:"archive_object_name,omitempty"`
}

// RemittancePreview is the parse-only view of an 835: structured content,
// parser warnings, and business-rule violations, without any posting.
type RemittancePreview struct {
	CheckNumber        string                 `json:"check_number"`
	CheckDate          string                 `json:"check_date"`
	PayerName          string                 `json:"payer_name"`
	PayerID            string                 `json:"payer_id"`
	PayeeName          string                 `json:"payee_name"`
	PaymentMethod      string                 `json:"payment_method"`
	TotalPaymentAmount string                 `json:"total_payment_amount"`
	Claims             []RemittanceClaimView  `json:"claims"`
	Warnings           []string               `json:"warnings,omitempty"`
	ValidationErrors   []string               `json:"validation_errors,omitempty"`
}

type RemittanceClaimView struct {
	ClaimNumber       string `json:"claim_number"`
	StatusCode        string `json:"status_code"`
	StatusDescription string `json:"status_description"`
	PatientName       string `json:"patient_name,omitempty"`
	TotalCharge       string `json:"total_charge"`
	PaymentAmount     string `json:"payment_amount"`
	ServiceLineCount  int    `json:"service_line_count"`
}

// BatchReport is the stored view of a previously posted batch.
type BatchReport struct {
	Batch    *models.PaymentBatch  `json:"batch"`
	Payments []models.ClaimPayment `json:"payments"`
}
