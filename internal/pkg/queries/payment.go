package queries

const (
	InsertClaimPayment = `
		INSERT INTO claim_payments (
			id,
			batch_id,
			claim_id,
			claim_number,
			status_code,
			total_charge,
			payment_amount,
			patient_responsibility,
			payer_control_number,
			filing_indicator,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	InsertServiceLinePayment = `
		INSERT INTO service_line_payments (
			id,
			claim_payment_id,
			procedure_code,
			modifiers,
			charge_amount,
			payment_amount,
			revenue_code,
			units_paid,
			service_date,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	InsertPaymentAdjustment = `
		INSERT INTO payment_adjustments (
			id,
			claim_payment_id,
			service_line_payment_id,
			level,
			group_code,
			reason_code,
			amount,
			quantity,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	GetClaimPaymentsByBatchID = `
		SELECT
			id,
			batch_id,
			claim_id,
			claim_number,
			status_code,
			total_charge,
			payment_amount,
			patient_responsibility,
			payer_control_number,
			filing_indicator,
			created_at
		FROM claim_payments
		WHERE batch_id = $1
		ORDER BY created_at
	`
)
