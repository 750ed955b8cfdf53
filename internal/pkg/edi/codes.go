package edi

// Claim status codes from CLP02.
const (
	ClaimStatusProcessedPrimary    = "1"
	ClaimStatusProcessedSecondary  = "2"
	ClaimStatusProcessedTertiary   = "3"
	ClaimStatusDenied              = "4"
	ClaimStatusPendedAdjudication  = "19"
	ClaimStatusPendedInformation   = "20"
	ClaimStatusReversal            = "22"
	ClaimStatusNotOurClaimForwards = "23"
)

// ClaimStatusDescriptions maps CLP02 status codes to human-readable text
// used by the reconciliation report.
var ClaimStatusDescriptions = map[string]string{
	ClaimStatusProcessedPrimary:    "Processed as Primary",
	ClaimStatusProcessedSecondary:  "Processed as Secondary",
	ClaimStatusProcessedTertiary:   "Processed as Tertiary",
	ClaimStatusDenied:              "Denied",
	ClaimStatusPendedAdjudication:  "Pended, Awaiting Adjudication",
	ClaimStatusPendedInformation:   "Pended, Awaiting Information",
	ClaimStatusReversal:            "Reversal of Previous Payment",
	ClaimStatusNotOurClaimForwards: "Not Our Claim, Forwarded to Additional Payer",
}

// AdjustmentGroupDescriptions maps CAS01 group codes.
var AdjustmentGroupDescriptions = map[string]string{
	"CO": "Contractual Obligation",
	"CR": "Correction and Reversal",
	"OA": "Other Adjustment",
	"PI": "Payer Initiated Reduction",
	"PR": "Patient Responsibility",
}

// AdjustmentReasonDescriptions maps CARC reason codes seen on autism-waiver
// remittances. Unknown codes render as "Reason <code>".
var AdjustmentReasonDescriptions = map[string]string{
	"1":   "Deductible amount",
	"2":   "Coinsurance amount",
	"3":   "Co-payment amount",
	"16":  "Claim lacks information needed for adjudication",
	"18":  "Exact duplicate claim or service",
	"22":  "Care may be covered by another payer",
	"23":  "Impact of prior payer adjudication",
	"29":  "Time limit for filing has expired",
	"45":  "Charge exceeds fee schedule or contracted amount",
	"50":  "Non-covered service, not deemed a medical necessity",
	"96":  "Non-covered charge",
	"97":  "Payment included in allowance for another service",
	"109": "Claim not covered by this payer or contractor",
	"119": "Benefit maximum for this period has been reached",
	"131": "Claim specific negotiated discount",
	"197": "Precertification or authorization absent",
	"204": "Service not covered under the patient's current benefit plan",
	"253": "Sequestration, reduction in federal payment",
}

// ProviderAdjustmentReasonDescriptions maps PLB03-1 reason codes.
var ProviderAdjustmentReasonDescriptions = map[string]string{
	"50": "Late charge",
	"72": "Authorized return",
	"AH": "Origination fee",
	"B2": "Rebate",
	"CS": "Adjustment",
	"FB": "Forwarding balance",
	"IR": "Internal revenue service withholding",
	"L6": "Interest owed",
	"WO": "Overpayment recovery",
}

// PaymentMethodDescriptions maps BPR04 payment method codes.
var PaymentMethodDescriptions = map[string]string{
	"ACH": "Automated Clearing House",
	"CHK": "Check",
	"FWT": "Federal Reserve Wire Transfer",
	"NON": "Non-Payment Data",
}

// MarylandMedicaidPayerIDs is the allow-list of payer identifiers accepted
// for autism-waiver remittance posting.
var MarylandMedicaidPayerIDs = map[string]bool{
	"MDMEDICAID": true,
	"SKMD0":      true,
	"77023":      true,
}

// AutismWaiverProcedureCodes are the five procedure codes billable under the
// Maryland autism waiver program.
var AutismWaiverProcedureCodes = map[string]bool{
	"H2019": true,
	"H2014": true,
	"T1027": true,
	"H2015": true,
	"S5111": true,
}

// DescribeAdjustmentGroup resolves a CAS01 group code to readable text.
func DescribeAdjustmentGroup(code string) string {
	if description, ok := AdjustmentGroupDescriptions[code]; ok {
		return description
	}
	return "Group " + code
}

// DescribeAdjustmentReason resolves a CARC reason code to readable text.
func DescribeAdjustmentReason(code string) string {
	if description, ok := AdjustmentReasonDescriptions[code]; ok {
		return description
	}
	return "Reason " + code
}

// DescribeProviderAdjustmentReason resolves a PLB03-1 reason code.
func DescribeProviderAdjustmentReason(code string) string {
	if description, ok := ProviderAdjustmentReasonDescriptions[code]; ok {
		return description
	}
	return "Reason " + code
}
