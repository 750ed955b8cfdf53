package constvars

const (
	RemittancePostedSuccessMessage    = "Remittance parsed and posted successfully"
	RemittancePreviewSuccessMessage   = "Remittance parsed successfully"
	PaymentBatchFetchedSuccessMessage = "Payment batch fetched successfully"
	ClaimBatchGeneratedSuccessMessage = "Claim file generated successfully"
	ClaimBatchSubmittedSuccessMessage = "Claim file generated and submitted successfully"
)
