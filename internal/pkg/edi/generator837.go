package edi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Provider identifies a billing, rendering, or referring provider on an
// outbound claim.
type Provider struct {
	OrganizationName string
	LastName         string
	FirstName        string
	NPI              string
	TaxID            string
	Address          Address
}

type Address struct {
	Line1 string
	City  string
	State string
	Zip   string
}

// Subscriber is the insured member. Every claim in this system bills the
// subscriber as a "self" relationship; dependent patients are not supported.
type Subscriber struct {
	MemberID    string
	LastName    string
	FirstName   string
	DateOfBirth string
	Gender      string
	Address     Address
}

// OutboundClaim is the input to 837P generation.
type OutboundClaim struct {
	ClaimNumber       string
	TotalAmount       decimal.Decimal
	StatementStart    string
	StatementEnd      string
	FacilityCode      string
	FrequencyCode     string
	BillingProvider   Provider
	Subscriber        Subscriber
	PayerName         string
	PayerID           string
	Diagnoses         []string
	ReferringProvider *Provider
	RenderingProvider *Provider
	ServiceLines      []OutboundServiceLine
}

type OutboundServiceLine struct {
	ProcedureCode    string
	Modifiers        []string
	ChargeAmount     decimal.Decimal
	Units            string
	PlaceOfService   string
	DiagnosisPointer string
	PriorAuthNumber  string
	ServiceDate      string
}

// ClaimRejection records the collected validation errors for one claim that
// was excluded from the generated file.
type ClaimRejection struct {
	ClaimNumber string
	Errors      []string
}

// GenerateResult is one generated 837P document plus the acceptance outcome
// per claim.
type GenerateResult struct {
	Document                 string
	AcceptedClaims           []string
	RejectedClaims           []ClaimRejection
	InterchangeControlNumber string
	GroupControlNumber       string
	TransactionControlNumber string
	SegmentCount             int
}

// GeneratorConfig identifies the trading partners on the interchange
// envelope and submitter/receiver loops.
type GeneratorConfig struct {
	SenderID      string
	ReceiverID    string
	SubmitterName string
	SubmitterID   string
	ReceiverName  string
	ContactName   string
	ContactPhone  string
}

// Generator emits 837P documents. Interchange and group control numbers are
// drawn once per instance; the transaction-set control number is a
// sequential counter within the instance starting at 1.
type Generator struct {
	delims Delimiters
	config GeneratorConfig
	icn    string
	gcn    string
	txnSeq int
	now    func() time.Time
}

func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		delims: DefaultDelimiters,
		config: config,
		icn:    randomControlNumber(interchangeControlWidth),
		gcn:    randomControlNumber(interchangeControlWidth),
		now:    time.Now,
	}
}

// ValidateOutboundClaim checks the fields generation cannot do without.
// Errors are collected, not short-circuited, so the caller can report every
// problem on a claim at once.
func ValidateOutboundClaim(claim *OutboundClaim) []string {
	var errs []string
	if claim.ClaimNumber == "" {
		errs = append(errs, "claim number is required")
	}
	if claim.BillingProvider.NPI == "" {
		errs = append(errs, "billing provider NPI is required")
	}
	if claim.Subscriber.MemberID == "" {
		errs = append(errs, "subscriber member id is required")
	}
	if len(claim.ServiceLines) == 0 {
		errs = append(errs, "claim has no service lines")
	}
	for i, line := range claim.ServiceLines {
		if line.ProcedureCode == "" {
			errs = append(errs, fmt.Sprintf("service line %d: procedure code is required", i+1))
		}
		if line.ChargeAmount.IsZero() {
			errs = append(errs, fmt.Sprintf("service line %d: charge amount is required", i+1))
		}
		if line.Units == "" {
			errs = append(errs, fmt.Sprintf("service line %d: units are required", i+1))
		}
		if line.ServiceDate == "" {
			errs = append(errs, fmt.Sprintf("service line %d: service date is required", i+1))
		}
	}
	return errs
}

// Generate validates each claim independently and emits one 837P document
// containing every claim that passed. A claim failing validation is
// rejected on its own; the rest of the batch is unaffected. Generation
// fails only when no claim survives.
func (g *Generator) Generate(claims []OutboundClaim) (*GenerateResult, error) {
	result := &GenerateResult{
		InterchangeControlNumber: g.icn,
		GroupControlNumber:       g.gcn,
	}

	var accepted []OutboundClaim
	for i := range claims {
		claim := claims[i]
		if errs := ValidateOutboundClaim(&claim); len(errs) > 0 {
			result.RejectedClaims = append(result.RejectedClaims, ClaimRejection{
				ClaimNumber: claim.ClaimNumber,
				Errors:      errs,
			})
			continue
		}
		accepted = append(accepted, claim)
		result.AcceptedClaims = append(result.AcceptedClaims, claim.ClaimNumber)
	}
	if len(accepted) == 0 {
		return result, fmt.Errorf("no claims passed validation")
	}

	g.txnSeq++
	txn := formatTransactionControlNumber(g.txnSeq)
	result.TransactionControlNumber = txn

	now := g.now()
	segments := g.envelope(now, txn)

	hlCounter := 0
	for _, claim := range accepted {
		segments = append(segments, g.claimLoops(&claim, &hlCounter)...)
	}

	// Trailers. SE01 must equal the literal count of segment terminators
	// in the emitted document, trailers included, so it is derived from
	// the final segment count rather than tracked incrementally.
	seIndex := len(segments)
	segments = append(segments, seg("SE", "", txn))
	segments = append(segments, seg("GE", "1", g.gcn))
	segments = append(segments, seg("IEA", "1", g.icn))
	segments[seIndex].Elements[1] = strconv.Itoa(len(segments))

	result.Document = JoinSegments(segments, g.delims)
	result.SegmentCount = len(segments)
	return result, nil
}

func seg(elements ...string) Segment {
	return Segment{Elements: elements}
}

func fixedWidth(value string, width int) string {
	if len(value) > width {
		return value[:width]
	}
	return value + strings.Repeat(" ", width-len(value))
}

func (g *Generator) envelope(now time.Time, txn string) []Segment {
	segments := []Segment{
		seg("ISA",
			"00", strings.Repeat(" ", 10),
			"00", strings.Repeat(" ", 10),
			"ZZ", fixedWidth(g.config.SenderID, 15),
			"ZZ", fixedWidth(g.config.ReceiverID, 15),
			now.Format("060102"), now.Format("1504"),
			string(g.delims.Repetition), "00501",
			g.icn, "0", "P", string(g.delims.Subelement)),
		seg("GS", "HC", g.config.SenderID, g.config.ReceiverID,
			now.Format("20060102"), now.Format("1504"),
			g.gcn, "X", "005010X222A1"),
		seg("ST", "837", txn, "005010X222A1"),
		seg("BHT", "0019", "00", g.icn, now.Format("20060102"), now.Format("1504"), "CH"),
		seg("NM1", "41", "2", g.config.SubmitterName, "", "", "", "", "46", g.config.SubmitterID),
	}
	if g.config.ContactName != "" {
		segments = append(segments, seg("PER", "IC", g.config.ContactName, "TE", g.config.ContactPhone))
	}
	segments = append(segments, seg("NM1", "40", "2", g.config.ReceiverName, "", "", "", "", "46", g.config.ReceiverID))
	return segments
}

// claimLoops emits the hierarchical loops for one claim. The two-tier HL
// scheme assigns sequential ids: billing provider (level 20, child flag 1)
// then its subscriber (level 22, child flag 0, "self" relationship).
func (g *Generator) claimLoops(claim *OutboundClaim, hlCounter *int) []Segment {
	*hlCounter++
	billingHL := *hlCounter
	*hlCounter++
	subscriberHL := *hlCounter

	segments := []Segment{
		seg("HL", strconv.Itoa(billingHL), "", "20", "1"),
		seg("NM1", "85", "2", claim.BillingProvider.OrganizationName, "", "", "", "", "XX", claim.BillingProvider.NPI),
		seg("N3", claim.BillingProvider.Address.Line1),
		seg("N4", claim.BillingProvider.Address.City, claim.BillingProvider.Address.State, claim.BillingProvider.Address.Zip),
		seg("REF", "EI", claim.BillingProvider.TaxID),
		seg("HL", strconv.Itoa(subscriberHL), strconv.Itoa(billingHL), "22", "0"),
		seg("SBR", "P", "18", "", "", "", "", "", "", "MC"),
		seg("NM1", "IL", "1", claim.Subscriber.LastName, claim.Subscriber.FirstName, "", "", "", "MI", claim.Subscriber.MemberID),
		seg("N3", claim.Subscriber.Address.Line1),
		seg("N4", claim.Subscriber.Address.City, claim.Subscriber.Address.State, claim.Subscriber.Address.Zip),
		seg("DMG", "D8", claim.Subscriber.DateOfBirth, claim.Subscriber.Gender),
		seg("NM1", "PR", "2", claim.PayerName, "", "", "", "", "PI", claim.PayerID),
	}

	frequency := claim.FrequencyCode
	if frequency == "" {
		frequency = "1"
	}
	placeComposite := strings.Join([]string{claim.FacilityCode, "B", frequency}, string(g.delims.Subelement))
	segments = append(segments,
		seg("CLM", claim.ClaimNumber, claim.TotalAmount.StringFixed(2), "", "", placeComposite, "Y", "A", "Y", "Y"),
		seg("DTP", "434", "RD8", claim.StatementStart+"-"+claim.StatementEnd),
	)

	if len(claim.Diagnoses) > 0 {
		hi := []string{"HI"}
		for i, dx := range claim.Diagnoses {
			qualifier := "ABF"
			if i == 0 {
				qualifier = "ABK"
			}
			hi = append(hi, qualifier+string(g.delims.Subelement)+dx)
		}
		segments = append(segments, Segment{Elements: hi})
	}

	if claim.ReferringProvider != nil && claim.ReferringProvider.NPI != "" {
		segments = append(segments, seg("NM1", "DN", "1",
			claim.ReferringProvider.LastName, claim.ReferringProvider.FirstName, "", "", "", "XX", claim.ReferringProvider.NPI))
	}
	if claim.RenderingProvider != nil && claim.RenderingProvider.NPI != "" &&
		claim.RenderingProvider.NPI != claim.BillingProvider.NPI {
		segments = append(segments, seg("NM1", "82", "1",
			claim.RenderingProvider.LastName, claim.RenderingProvider.FirstName, "", "", "", "XX", claim.RenderingProvider.NPI))
	}

	for i, line := range claim.ServiceLines {
		segments = append(segments, g.serviceLineLoops(&line, i+1)...)
	}
	return segments
}

func (g *Generator) serviceLineLoops(line *OutboundServiceLine, number int) []Segment {
	procedure := []string{"HC", line.ProcedureCode}
	for _, mod := range line.Modifiers {
		if mod != "" {
			procedure = append(procedure, mod)
		}
	}
	composite := strings.Join(procedure, string(g.delims.Subelement))

	segments := []Segment{
		seg("LX", strconv.Itoa(number)),
		seg("SV1", composite, line.ChargeAmount.StringFixed(2), "UN", line.Units,
			line.PlaceOfService, "", line.DiagnosisPointer),
		seg("DTP", "472", "D8", line.ServiceDate),
	}
	if line.PriorAuthNumber != "" {
		segments = append(segments, seg("REF", "G1", line.PriorAuthNumber))
	}
	return segments
}
