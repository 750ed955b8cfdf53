package edi

import (
	"github.com/shopspring/decimal"
)

// RemittanceDocument is the structured form of one 835 transaction.
type RemittanceDocument struct {
	InterchangeControlNumber string
	GroupControlNumber       string
	TransactionControlNumber string
	InterchangeDate          string
	InterchangeTime          string

	Payer Party
	Payee Party

	TotalPaymentAmount decimal.Decimal
	CreditDebitFlag    string
	PaymentMethod      string
	CheckNumber        string
	CheckDate          string

	Claims              []RemitClaim
	ProviderAdjustments []ProviderAdjustment
}

type Party struct {
	Name string
	ID   string
}

// RemitClaim is one CLP loop: the claim-level payment data plus its
// adjustments and service lines.
type RemitClaim struct {
	ClaimNumber           string
	StatusCode            string
	TotalCharge           decimal.Decimal
	PaymentAmount         decimal.Decimal
	PatientResponsibility decimal.Decimal
	FilingIndicator       string
	PayerControlNumber    string
	FacilityCode          string
	FrequencyCode         string

	PatientName           string
	PatientID             string
	RenderingProviderName string
	RenderingProviderNPI  string

	ServicePeriodStart string
	ServicePeriodEnd   string

	Adjustments  []Adjustment
	ServiceLines []ServiceLine
}

// ServiceLine is one SVC loop inside a claim.
type ServiceLine struct {
	ProcedureCode string
	Modifiers     []string
	ChargeAmount  decimal.Decimal
	PaymentAmount decimal.Decimal
	RevenueCode   string
	UnitsPaid     string
	UnitsBilled   string
	ServiceDate   string
	Adjustments   []Adjustment
}

// Adjustment is one (reason, amount, quantity) triple out of a CAS segment.
type Adjustment struct {
	GroupCode  string
	ReasonCode string
	Amount     decimal.Decimal
	Quantity   string
}

// ProviderAdjustment is one PLB segment: provider-level balances that do not
// belong to any single claim.
type ProviderAdjustment struct {
	ProviderID       string
	FiscalPeriodDate string
	Details          []ProviderAdjustmentDetail
}

type ProviderAdjustmentDetail struct {
	ReasonCode  string
	ReferenceID string
	Amount      decimal.Decimal
}

// TotalAdjustmentAmount sums every claim-level and service-level adjustment
// across the document.
func (d *RemittanceDocument) TotalAdjustmentAmount() decimal.Decimal {
	total := decimal.Zero
	for _, claim := range d.Claims {
		for _, adj := range claim.Adjustments {
			total = total.Add(adj.Amount)
		}
		for _, line := range claim.ServiceLines {
			for _, adj := range line.Adjustments {
				total = total.Add(adj.Amount)
			}
		}
	}
	return total
}
