package queries

const (
	InsertPaymentBatch = `
		INSERT INTO payment_batches (
			id,
			batch_type,
			status,
			payer_name,
			payer_id,
			payee_name,
			payee_id,
			check_number,
			check_date,
			payment_method,
			total_payment_amount,
			posted_amount,
			adjustment_amount,
			interchange_control_number,
			claim_count,
			archive_object_name,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	// UpdatePaymentBatchCompletion finalizes the batch row: the computed
	// posted and adjustment totals land together with the completed status.
	UpdatePaymentBatchCompletion = `
		UPDATE payment_batches
		SET status = $2, posted_amount = $3, adjustment_amount = $4, claim_count = $5, updated_at = $6
		WHERE id = $1
	`

	GetPaymentBatchByID = `
		SELECT
			id,
			batch_type,
			status,
			payer_name,
			payer_id,
			payee_name,
			payee_id,
			check_number,
			check_date,
			payment_method,
			total_payment_amount,
			posted_amount,
			adjustment_amount,
			interchange_control_number,
			claim_count,
			archive_object_name,
			created_at,
			updated_at
		FROM payment_batches
		WHERE id = $1
	`

	GetPaymentBatchByCheckNumber = `
		SELECT
			id,
			batch_type,
			status,
			payer_name,
			payer_id,
			payee_name,
			payee_id,
			check_number,
			check_date,
			payment_method,
			total_payment_amount,
			posted_amount,
			adjustment_amount,
			interchange_control_number,
			claim_count,
			archive_object_name,
			created_at,
			updated_at
		FROM payment_batches
		WHERE check_number = $1 AND payer_id = $2
	`
)
