package queries

const (
	// GetClaimByNumberForUpdate locks the claim row for the duration of the
	// posting transaction so concurrent batches cannot both apply payments
	// to the same claim.
	GetClaimByNumberForUpdate = `
		SELECT
			id,
			claim_number,
			patient_name,
			patient_id,
			payer_id,
			rendering_provider_npi,
			billed_amount,
			paid_amount,
			status,
			service_period_start,
			service_period_end,
			created_at,
			updated_at
		FROM claims
		WHERE claim_number = $1
		FOR UPDATE
	`

	InsertClaim = `
		INSERT INTO claims (
			id,
			claim_number,
			patient_name,
			patient_id,
			payer_id,
			rendering_provider_npi,
			billed_amount,
			paid_amount,
			status,
			service_period_start,
			service_period_end,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	UpdateClaimPosting = `
		UPDATE claims
		SET paid_amount = $2, status = $3, updated_at = $4
		WHERE id = $1
	`
)
