package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderAdjustment is one PLB segment: provider-level money movement that
// belongs to the batch, not to any claim.
type ProviderAdjustment struct {
	ID               string    `json:"id"`
	BatchID          string    `json:"batch_id"`
	ProviderID       string    `json:"provider_id"`
	FiscalPeriodDate string    `json:"fiscal_period_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	Details []ProviderAdjustmentDetail `json:"details,omitempty"`
}

type ProviderAdjustmentDetail struct {
	ID                   string          `json:"id"`
	ProviderAdjustmentID string          `json:"provider_adjustment_id"`
	ReasonCode           string          `json:"reason_code"`
	ReferenceID          string          `json:"reference_id,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	CreatedAt            time.Time       `json:"created_at"`
}
