package requests

// ClaimSubmission is the payload for 837P generation and submission.
type ClaimSubmission struct {
	Claims []OutboundClaim `json:"claims" validate:"required,min=1,dive"`
}

type OutboundClaim struct {
	ClaimNumber       string                `json:"claim_number" validate:"required"`
	TotalAmount       string                `json:"total_amount" validate:"required"`
	StatementStart    string                `json:"statement_start" validate:"required,len=8"`
	StatementEnd      string                `json:"statement_end" validate:"required,len=8"`
	FacilityCode      string                `json:"facility_code" validate:"required"`
	FrequencyCode     string                `json:"frequency_code"`
	BillingProvider   ClaimProvider         `json:"billing_provider" validate:"required"`
	Subscriber        ClaimSubscriber       `json:"subscriber" validate:"required"`
	PayerName         string                `json:"payer_name" validate:"required"`
	PayerID           string                `json:"payer_id" validate:"required"`
	Diagnoses         []string              `json:"diagnoses" validate:"required,min=1"`
	ReferringProvider *ClaimProvider        `json:"referring_provider,omitempty"`
	RenderingProvider *ClaimProvider        `json:"rendering_provider,omitempty"`
	ServiceLines      []OutboundServiceLine `json:"service_lines" validate:"required,min=1,dive"`
}

type ClaimProvider struct {
	OrganizationName string       `json:"organization_name"`
	LastName         string       `json:"last_name"`
	FirstName        string       `json:"first_name"`
	NPI              string       `json:"npi"`
	TaxID            string       `json:"tax_id"`
	Address          ClaimAddress `json:"address"`
}

type ClaimSubscriber struct {
	MemberID    string       `json:"member_id" validate:"required"`
	LastName    string       `json:"last_name" validate:"required"`
	FirstName   string       `json:"first_name"`
	DateOfBirth string       `json:"date_of_birth" validate:"required,len=8"`
	Gender      string       `json:"gender"`
	Address     ClaimAddress `json:"address"`
}

type ClaimAddress struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

type OutboundServiceLine struct {
	ProcedureCode    string   `json:"procedure_code" validate:"required"`
	Modifiers        []string `json:"modifiers"`
	ChargeAmount     string   `json:"charge_amount" validate:"required"`
	Units            string   `json:"units" validate:"required"`
	PlaceOfService   string   `json:"place_of_service"`
	DiagnosisPointer string   `json:"diagnosis_pointer"`
	PriorAuthNumber  string   `json:"prior_auth_number"`
	ServiceDate      string   `json:"service_date" validate:"required,len=8"`
}
