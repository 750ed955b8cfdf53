package constvars

type ContextKey string

const (
	ResourceRemittances = "remittances"
	ResourceClaims      = "claims"
	ResourceBatches     = "batches"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLRCLM_SVC_"
)

const (
	PaymentBatchTypeEDI835 = "EDI_835"

	PaymentBatchStatusProcessing = "processing"
	PaymentBatchStatusCompleted  = "completed"

	ClaimStatusPaid           = "paid"
	ClaimStatusPartialPayment = "partial_payment"
	ClaimStatusDenied         = "denied"
	ClaimStatusReversed       = "reversed"
)

const (
	AdjustmentLevelClaim   = "claim"
	AdjustmentLevelService = "service"
)

const (
	ArchiveDirectionInbound  = "inbound"
	ArchiveDirectionOutbound = "outbound"
)
