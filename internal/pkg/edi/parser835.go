package edi

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseResult carries the parsed document together with the non-fatal
// warnings collected along the way. The caller decides whether warnings
// block posting.
type ParseResult struct {
	Document *RemittanceDocument
	Warnings []string
}

// RemittanceParser is a single-use cursor over a tokenized 835. Each parse
// owns its own instance, so concurrent parses never share state.
type RemittanceParser struct {
	delims   Delimiters
	segments []Segment
	pos      int
	warnings []string
	doc      *RemittanceDocument
}

func NewRemittanceParser() *RemittanceParser {
	return &RemittanceParser{delims: DefaultDelimiters}
}

func NewRemittanceParserWithDelimiters(delims Delimiters) *RemittanceParser {
	return &RemittanceParser{delims: delims}
}

// Parse tokenizes raw 835 text and walks the segment sequence. A document
// with no segments is a hard failure; a malformed individual segment only
// produces a warning and is skipped.
func (p *RemittanceParser) Parse(raw string) (*ParseResult, error) {
	segments, err := Tokenize(raw, p.delims)
	if err != nil {
		return nil, err
	}

	p.segments = segments
	p.pos = 0
	p.warnings = nil
	p.doc = &RemittanceDocument{}

	for p.pos < len(p.segments) {
		seg := p.segments[p.pos]
		switch seg.Tag() {
		case "ISA":
			p.handleISA(seg)
		case "GS":
			p.handleGS(seg)
		case "ST":
			p.handleST(seg)
		case "BPR":
			p.handleBPR(seg)
		case "TRN":
			p.handleTRN(seg)
		case "N1":
			p.handleN1(seg)
		case "CLP":
			p.handleCLP(seg)
		case "PLB":
			p.handlePLB(seg)
		case "SE", "GE", "IEA":
			// Trailers carry counts we recompute ourselves.
		}
		p.pos++
	}

	return &ParseResult{Document: p.doc, Warnings: p.warnings}, nil
}

func (p *RemittanceParser) warnf(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// amount parses a signed decimal element, warning instead of failing on
// garbage so a single bad segment cannot abort the file.
func (p *RemittanceParser) amount(raw, context string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		p.warnf("segment %d: %s has non-numeric amount %q", p.pos+1, context, raw)
		return decimal.Zero
	}
	return value
}

func (p *RemittanceParser) handleISA(seg Segment) {
	if len(seg.Elements) < 14 {
		p.warnf("segment %d: ISA has %d elements, need 14", p.pos+1, len(seg.Elements))
		return
	}
	p.doc.InterchangeDate = seg.Element(9)
	p.doc.InterchangeTime = seg.Element(10)
	p.doc.InterchangeControlNumber = seg.Element(13)
}

func (p *RemittanceParser) handleGS(seg Segment) {
	if len(seg.Elements) < 7 {
		p.warnf("segment %d: GS has %d elements, need 7", p.pos+1, len(seg.Elements))
		return
	}
	p.doc.GroupControlNumber = seg.Element(6)
}

func (p *RemittanceParser) handleST(seg Segment) {
	if len(seg.Elements) < 3 {
		p.warnf("segment %d: ST has %d elements, need 3", p.pos+1, len(seg.Elements))
		return
	}
	p.doc.TransactionControlNumber = seg.Element(2)
}

func (p *RemittanceParser) handleBPR(seg Segment) {
	if len(seg.Elements) < 5 {
		p.warnf("segment %d: BPR has %d elements, need 5", p.pos+1, len(seg.Elements))
		return
	}
	p.doc.TotalPaymentAmount = p.amount(seg.Element(2), "BPR02")
	p.doc.CreditDebitFlag = seg.Element(3)
	p.doc.PaymentMethod = seg.Element(4)
	p.doc.CheckDate = seg.Element(16)
}

func (p *RemittanceParser) handleTRN(seg Segment) {
	if len(seg.Elements) < 3 {
		p.warnf("segment %d: TRN has %d elements, need 3", p.pos+1, len(seg.Elements))
		return
	}
	p.doc.CheckNumber = seg.Element(2)
}

func (p *RemittanceParser) handleN1(seg Segment) {
	if len(seg.Elements) < 3 {
		p.warnf("segment %d: N1 has %d elements, need 3", p.pos+1, len(seg.Elements))
		return
	}
	switch seg.Element(1) {
	case "PR":
		p.doc.Payer.Name = seg.Element(2)
		p.doc.Payer.ID = seg.Element(4)
	case "PE":
		p.doc.Payee.Name = seg.Element(2)
		p.doc.Payee.ID = seg.Element(4)
	}
}

// handleCLP builds a claim from the CLP segment, then consumes every segment
// belonging to this claim until the next CLP, PLB, or SE. The terminating
// segment is not consumed: the cursor is rewound one position so the outer
// loop reprocesses it.
func (p *RemittanceParser) handleCLP(seg Segment) {
	if len(seg.Elements) < 5 {
		p.warnf("segment %d: CLP has %d elements, need 5", p.pos+1, len(seg.Elements))
		return
	}

	claim := RemitClaim{
		ClaimNumber:           seg.Element(1),
		StatusCode:            seg.Element(2),
		TotalCharge:           p.amount(seg.Element(3), "CLP03"),
		PaymentAmount:         p.amount(seg.Element(4), "CLP04"),
		PatientResponsibility: p.amount(seg.Element(5), "CLP05"),
		FilingIndicator:       seg.Element(6),
		PayerControlNumber:    seg.Element(7),
		FacilityCode:          seg.Element(8),
		FrequencyCode:         seg.Element(9),
	}

	p.pos++
	for p.pos < len(p.segments) {
		child := p.segments[p.pos]
		tag := child.Tag()
		if tag == "CLP" || tag == "PLB" || tag == "SE" {
			p.pos--
			break
		}

		switch tag {
		case "NM1":
			p.claimName(&claim, child)
		case "DTM":
			p.claimDate(&claim, child)
		case "CAS":
			claim.Adjustments = append(claim.Adjustments, p.parseCAS(child)...)
		case "SVC":
			p.handleSVC(&claim, child)
		}
		p.pos++
	}
	if p.pos >= len(p.segments) {
		p.pos = len(p.segments) - 1
	}

	p.doc.Claims = append(p.doc.Claims, claim)
}

func (p *RemittanceParser) claimName(claim *RemitClaim, seg Segment) {
	if len(seg.Elements) < 4 {
		p.warnf("segment %d: NM1 has %d elements, need 4", p.pos+1, len(seg.Elements))
		return
	}
	name := seg.Element(3)
	if seg.Element(4) != "" {
		name = seg.Element(3) + ", " + seg.Element(4)
	}
	switch seg.Element(1) {
	case "QC":
		claim.PatientName = name
		claim.PatientID = seg.Element(9)
	case "82":
		claim.RenderingProviderName = name
		claim.RenderingProviderNPI = seg.Element(9)
	}
}

func (p *RemittanceParser) claimDate(claim *RemitClaim, seg Segment) {
	if len(seg.Elements) < 3 {
		p.warnf("segment %d: DTM has %d elements, need 3", p.pos+1, len(seg.Elements))
		return
	}
	switch seg.Element(1) {
	case "232":
		claim.ServicePeriodStart = seg.Element(2)
	case "233":
		claim.ServicePeriodEnd = seg.Element(2)
	}
}

// handleSVC performs the same nested scan one level deeper: the service
// line owns every DTM and CAS that follows it, up to the next SVC, CLP,
// PLB, or SE.
func (p *RemittanceParser) handleSVC(claim *RemitClaim, seg Segment) {
	if len(seg.Elements) < 4 {
		p.warnf("segment %d: SVC has %d elements, need 4", p.pos+1, len(seg.Elements))
		return
	}

	line := ServiceLine{
		ChargeAmount:  p.amount(seg.Element(2), "SVC02"),
		PaymentAmount: p.amount(seg.Element(3), "SVC03"),
		RevenueCode:   seg.Element(4),
		UnitsPaid:     seg.Element(5),
		UnitsBilled:   seg.Element(6),
	}

	// SVC01 is a composite: qualifier:procedure:mod1:mod2:mod3:mod4.
	// Empty modifier positions are dropped, not kept as blanks.
	composite := seg.Subelements(1, p.delims)
	if len(composite) > 1 {
		line.ProcedureCode = composite[1]
	}
	for i := 2; i < len(composite) && i < 6; i++ {
		if composite[i] != "" {
			line.Modifiers = append(line.Modifiers, composite[i])
		}
	}

	p.pos++
	for p.pos < len(p.segments) {
		child := p.segments[p.pos]
		tag := child.Tag()
		if tag == "SVC" || tag == "CLP" || tag == "PLB" || tag == "SE" {
			p.pos--
			break
		}

		switch tag {
		case "DTM":
			if len(child.Elements) < 3 {
				p.warnf("segment %d: DTM has %d elements, need 3", p.pos+1, len(child.Elements))
			} else if child.Element(1) == "472" {
				line.ServiceDate = child.Element(2)
			}
		case "CAS":
			line.Adjustments = append(line.Adjustments, p.parseCAS(child)...)
		}
		p.pos++
	}
	if p.pos >= len(p.segments) {
		p.pos = len(p.segments) - 1
	}

	claim.ServiceLines = append(claim.ServiceLines, line)
}

// parseCAS explodes the repeating groups of a CAS segment: after the group
// code, elements repeat in triples of (reason code, amount, quantity) until
// the elements run out.
func (p *RemittanceParser) parseCAS(seg Segment) []Adjustment {
	if len(seg.Elements) < 4 {
		p.warnf("segment %d: CAS has %d elements, need 4", p.pos+1, len(seg.Elements))
		return nil
	}

	groupCode := seg.Element(1)
	var adjustments []Adjustment
	for i := 2; i < len(seg.Elements); i += 3 {
		reason := seg.Element(i)
		if reason == "" {
			continue
		}
		adjustments = append(adjustments, Adjustment{
			GroupCode:  groupCode,
			ReasonCode: reason,
			Amount:     p.amount(seg.Element(i+1), "CAS amount"),
			Quantity:   seg.Element(i + 2),
		})
	}
	return adjustments
}

// handlePLB parses provider-level balances: after provider id and fiscal
// period, elements repeat in pairs of (reason:reference composite, amount).
func (p *RemittanceParser) handlePLB(seg Segment) {
	if len(seg.Elements) < 4 {
		p.warnf("segment %d: PLB has %d elements, need 4", p.pos+1, len(seg.Elements))
		return
	}

	adjustment := ProviderAdjustment{
		ProviderID:       seg.Element(1),
		FiscalPeriodDate: seg.Element(2),
	}
	for i := 3; i+1 < len(seg.Elements); i += 2 {
		composite := seg.Subelements(i, p.delims)
		detail := ProviderAdjustmentDetail{
			ReasonCode: composite[0],
			Amount:     p.amount(seg.Element(i+1), "PLB amount"),
		}
		if len(composite) > 1 {
			detail.ReferenceID = composite[1]
		}
		adjustment.Details = append(adjustment.Details, detail)
	}

	p.doc.ProviderAdjustments = append(p.doc.ProviderAdjustments, adjustment)
}

// ValidateMarylandMedicaid checks the parsed document against the
// autism-waiver business rules: the payer must be on the Maryland Medicaid
// allow-list and every service-line procedure code must be one of the five
// waiver codes. Violations accumulate; none of them aborts parsing.
func ValidateMarylandMedicaid(doc *RemittanceDocument) []string {
	var errs []string
	if !MarylandMedicaidPayerIDs[doc.Payer.ID] {
		errs = append(errs, fmt.Sprintf("payer id %q is not a recognized Maryland Medicaid payer", doc.Payer.ID))
	}
	for _, claim := range doc.Claims {
		for _, line := range claim.ServiceLines {
			if line.ProcedureCode != "" && !AutismWaiverProcedureCodes[line.ProcedureCode] {
				errs = append(errs, fmt.Sprintf("claim %s: procedure code %q is not an autism-waiver code", claim.ClaimNumber, line.ProcedureCode))
			}
		}
	}
	return errs
}
