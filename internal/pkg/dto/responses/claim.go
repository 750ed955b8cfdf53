package responses

// ClaimSubmissionResult reports the outcome of one 837P generation and
// clearinghouse hand-off.
type ClaimSubmissionResult struct {
	InterchangeControlNumber string           `json:"interchange_control_number"`
	TransactionControlNumber string           `json:"transaction_control_number"`
	AcceptedClaims           []string         `json:"accepted_claims"`
	RejectedClaims           []RejectedClaim  `json:"rejected_claims,omitempty"`
	SegmentCount             int              `json:"segment_count"`
	ArchiveObjectName        string           `json:"archive_object_name,omitempty"`
	Clearinghouse            *ClearinghouseAck `json:"clearinghouse,omitempty"`
}

type RejectedClaim struct {
	ClaimNumber string   `json:"claim_number"`
	Errors      []string `json:"errors"`
}

// ClearinghouseAck is the clearinghouse's synchronous acknowledgment of a
// submitted claim file.
type ClearinghouseAck struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
}
