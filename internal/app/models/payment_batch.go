package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentBatch is one posted 835 remittance file. The check number plus payer
// identifier pair is the duplicate-posting key.
type PaymentBatch struct {
	ID                       string          `json:"id"`
	BatchType                string          `json:"batch_type"`
	Status                   string          `json:"status"`
	PayerName                string          `json:"payer_name"`
	PayerID                  string          `json:"payer_id"`
	PayeeName                string          `json:"payee_name"`
	PayeeID                  string          `json:"payee_id"`
	CheckNumber              string          `json:"check_number"`
	CheckDate                string          `json:"check_date"`
	PaymentMethod            string          `json:"payment_method"`
	TotalPaymentAmount       decimal.Decimal `json:"total_payment_amount"`
	PostedAmount             decimal.Decimal `json:"posted_amount"`
	AdjustmentAmount         decimal.Decimal `json:"adjustment_amount"`
	InterchangeControlNumber string          `json:"interchange_control_number"`
	ClaimCount               int             `json:"claim_count"`
	ArchiveObjectName        string          `json:"archive_object_name,omitempty"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}
