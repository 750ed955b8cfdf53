package constvars

const (
	LoggingRequestIDKey = "request_id"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingBatchIDKey       = "batch_id"
	LoggingCheckNumberKey   = "check_number"
	LoggingPayerIDKey       = "payer_id"
	LoggingClaimCountKey    = "claim_count"
	LoggingWarningCountKey  = "warning_count"
	LoggingObjectNameKey    = "object_name"
	LoggingControlNumberKey = "control_number"
)
