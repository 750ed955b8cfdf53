package queries

const (
	InsertProviderAdjustment = `
		INSERT INTO provider_adjustments (
			id,
			batch_id,
			provider_id,
			fiscal_period_date,
			created_at
		) VALUES ($1, $2, $3, $4, $5)
	`

	InsertProviderAdjustmentDetail = `
		INSERT INTO provider_adjustment_details (
			id,
			provider_adjustment_id,
			reason_code,
			reference_id,
			amount,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
)
