package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"datetime": "must be a valid date",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again later"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please contact our administrator"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientEmptyEDIFile                  = "The uploaded EDI file is empty or unreadable"
	ErrClientMalformedEDIFile              = "The uploaded file is not a valid 835 remittance"
	ErrClientDuplicateRemittance           = "This remittance file has already been posted"
	ErrClientRemittanceNotAllowed          = "The remittance failed Maryland Medicaid validation"
	ErrClientBatchNotFound                 = "Payment batch not found"
	ErrClientClaimBatchEmpty               = "The claim batch does not contain any claims"
	ErrClientAllClaimsRejected             = "Every claim in the batch failed validation"
	ErrClientClearinghouseRejected         = "The clearinghouse rejected the submission"
)

// Developer messages
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Failed to parse JSON payload"
	ErrDevCannotReadRequestBody      = "Failed to read request body"
	ErrDevEDIEmptyInput              = "EDI input is empty after trimming"
	ErrDevEDIStructuralFailure       = "EDI document has no parseable segments"
	ErrDevRemittanceDuplicate        = "Remittance with the same payer and check number already posted"
	ErrDevRemittanceValidation       = "Remittance failed business-rule validation"
	ErrDevPostingTransactionFailed   = "Payment posting transaction failed and was rolled back"
	ErrDevDBFailedToFindData         = "Failed to find data in postgres"
	ErrDevDBFailedToInsertData       = "Failed to insert data to postgres"
	ErrDevDBFailedToUpdateData       = "Failed to update data in postgres"
	ErrDevDBFailedToIterateDataset   = "Failed to iterate postgres dataset"
	ErrDevDBFailedToBeginTransaction = "Failed to begin postgres transaction"
	ErrDevDBFailedToCommit           = "Failed to commit postgres transaction"
	ErrDevBatchNotFound              = "Payment batch does not exist"
	ErrDevMinioFailedToCreateObject  = "Failed to create object in bucket: %s"
	ErrDevRedisSetData               = "Failed to set data to redis"
	ErrDevRedisGetData               = "Failed to get data from redis"
	ErrDevRedisDeleteData            = "Failed to delete data from redis"
	ErrDevCannotMarshalJSON          = "Failed to marshal value to JSON"
	ErrDevRabbitMQPublish            = "Failed to publish message to queue: %s"
	ErrDevCreateHTTPRequest          = "Failed to create HTTP request"
	ErrDevSendHTTPRequest            = "Failed to send HTTP request"
	ErrDevClearinghouseStatus        = "Clearinghouse returned non-success status: %d"
	ErrDevClearinghouseDecode        = "Failed to decode clearinghouse response"
	ErrDevGenerate837Failed          = "837 generation produced no acceptable claims"
	ErrDevMissingRequestID           = "Request ID missing from context"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded while processing request"
)
