package edi

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	g := NewGenerator(GeneratorConfig{
		SenderID:      "SUNRISEABA",
		ReceiverID:    "MDMEDICAID",
		SubmitterName: "SUNRISE AUTISM SERVICES",
		SubmitterID:   "SUB001",
		ReceiverName:  "MARYLAND MEDICAID",
		ContactName:   "BILLING DEPT",
		ContactPhone:  "4105551234",
	})
	g.now = func() time.Time {
		return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	}
	return g
}

func validOutboundClaim(number string) OutboundClaim {
	return OutboundClaim{
		ClaimNumber:    number,
		TotalAmount:    decimal.RequireFromString("480.00"),
		StatementStart: "20240101",
		StatementEnd:   "20240105",
		FacilityCode:   "12",
		BillingProvider: Provider{
			OrganizationName: "SUNRISE AUTISM SERVICES",
			NPI:              "1234567890",
			TaxID:            "521234567",
			Address:          Address{Line1: "100 MAIN ST", City: "BALTIMORE", State: "MD", Zip: "21201"},
		},
		Subscriber: Subscriber{
			MemberID:    "MBR001",
			LastName:    "DOE",
			FirstName:   "JANE",
			DateOfBirth: "20180704",
			Gender:      "F",
			Address:     Address{Line1: "200 OAK AVE", City: "BALTIMORE", State: "MD", Zip: "21202"},
		},
		PayerName: "MARYLAND MEDICAID",
		PayerID:   "MDMEDICAID",
		Diagnoses: []string{"F840", "F841"},
		RenderingProvider: &Provider{
			LastName:  "SMITH",
			FirstName: "ALICE",
			NPI:       "1999999984",
		},
		ServiceLines: []OutboundServiceLine{
			{
				ProcedureCode:    "H2019",
				Modifiers:        []string{"HM"},
				ChargeAmount:     decimal.RequireFromString("240.00"),
				Units:            "4",
				PlaceOfService:   "12",
				DiagnosisPointer: "1",
				ServiceDate:      "20240102",
			},
			{
				ProcedureCode:    "H2014",
				ChargeAmount:     decimal.RequireFromString("240.00"),
				Units:            "4",
				PlaceOfService:   "12",
				DiagnosisPointer: "1",
				PriorAuthNumber:  "AUTH789",
				ServiceDate:      "20240103",
			},
		},
	}
}

func findSegment(t *testing.T, document, tag string) Segment {
	t.Helper()
	segments, err := Tokenize(document, DefaultDelimiters)
	require.NoError(t, err)
	for _, seg := range segments {
		if seg.Tag() == tag {
			return seg
		}
	}
	t.Fatalf("segment %s not found", tag)
	return Segment{}
}

func TestGenerateSegmentCountMatchesTerminators(t *testing.T) {
	result, err := testGenerator().Generate([]OutboundClaim{validOutboundClaim("CLM001")})
	require.NoError(t, err)

	terminators := strings.Count(result.Document, "~")
	assert.Equal(t, terminators, result.SegmentCount)

	se := findSegment(t, result.Document, "SE")
	assert.Equal(t, strconv.Itoa(terminators), se.Element(1))
	assert.Equal(t, result.TransactionControlNumber, se.Element(2))
}

func TestGenerateEnvelope(t *testing.T) {
	result, err := testGenerator().Generate([]OutboundClaim{validOutboundClaim("CLM001")})
	require.NoError(t, err)

	isa := findSegment(t, result.Document, "ISA")
	require.Len(t, isa.Elements, 17)
	assert.Equal(t, "SUNRISEABA     ", isa.Element(6))
	assert.Equal(t, "MDMEDICAID     ", isa.Element(8))
	assert.Equal(t, "240115", isa.Element(9))
	assert.Equal(t, result.InterchangeControlNumber, isa.Element(13))
	assert.Len(t, result.InterchangeControlNumber, 9)

	gs := findSegment(t, result.Document, "GS")
	assert.Equal(t, "HC", gs.Element(1))
	assert.Equal(t, result.GroupControlNumber, gs.Element(6))
	assert.Equal(t, "005010X222A1", gs.Element(8))

	iea := findSegment(t, result.Document, "IEA")
	assert.Equal(t, result.InterchangeControlNumber, iea.Element(2))

	st := findSegment(t, result.Document, "ST")
	assert.Equal(t, "837", st.Element(1))
	assert.Equal(t, "0001", st.Element(2))
}

func TestGenerateHierarchicalLoops(t *testing.T) {
	result, err := testGenerator().Generate([]OutboundClaim{validOutboundClaim("CLM001")})
	require.NoError(t, err)

	segments, err := Tokenize(result.Document, DefaultDelimiters)
	require.NoError(t, err)

	var hls []Segment
	for _, seg := range segments {
		if seg.Tag() == "HL" {
			hls = append(hls, seg)
		}
	}
	require.Len(t, hls, 2)

	// Billing provider: level 20, has children. Subscriber: level 22,
	// parented to billing, no children.
	assert.Equal(t, "1", hls[0].Element(1))
	assert.Equal(t, "", hls[0].Element(2))
	assert.Equal(t, "20", hls[0].Element(3))
	assert.Equal(t, "1", hls[0].Element(4))

	assert.Equal(t, "2", hls[1].Element(1))
	assert.Equal(t, "1", hls[1].Element(2))
	assert.Equal(t, "22", hls[1].Element(3))
	assert.Equal(t, "0", hls[1].Element(4))
}

func TestGenerateClaimContent(t *testing.T) {
	result, err := testGenerator().Generate([]OutboundClaim{validOutboundClaim("CLM001")})
	require.NoError(t, err)

	clm := findSegment(t, result.Document, "CLM")
	assert.Equal(t, "CLM001", clm.Element(1))
	assert.Equal(t, "480.00", clm.Element(2))
	assert.Equal(t, []string{"12", "B", "1"}, clm.Subelements(5, DefaultDelimiters))

	hi := findSegment(t, result.Document, "HI")
	assert.Equal(t, []string{"ABK", "F840"}, hi.Subelements(1, DefaultDelimiters))
	assert.Equal(t, []string{"ABF", "F841"}, hi.Subelements(2, DefaultDelimiters))

	sv1 := findSegment(t, result.Document, "SV1")
	assert.Equal(t, []string{"HC", "H2019", "HM"}, sv1.Subelements(1, DefaultDelimiters))
	assert.Equal(t, "240.00", sv1.Element(2))
	assert.Equal(t, "UN", sv1.Element(3))
	assert.Equal(t, "4", sv1.Element(4))

	assert.Contains(t, result.Document, "REF*G1*AUTH789~")
	assert.Contains(t, result.Document, "DTP*472*D8*20240102~")
	assert.Contains(t, result.Document, "NM1*82*1*SMITH*ALICE****XX*1999999984~")
}

func TestGenerateOmitsRenderingWhenSameAsBilling(t *testing.T) {
	claim := validOutboundClaim("CLM001")
	claim.RenderingProvider = &Provider{
		LastName: "SUNRISE",
		NPI:      claim.BillingProvider.NPI,
	}

	result, err := testGenerator().Generate([]OutboundClaim{claim})
	require.NoError(t, err)

	assert.NotContains(t, result.Document, "NM1*82")
}

func TestGenerateRejectsClaimMissingBillingNPI(t *testing.T) {
	claim := validOutboundClaim("CLM001")
	claim.BillingProvider.NPI = ""

	result, err := testGenerator().Generate([]OutboundClaim{claim})
	require.Error(t, err)
	require.Len(t, result.RejectedClaims, 1)

	joined := strings.Join(result.RejectedClaims[0].Errors, "; ")
	assert.Contains(t, joined, "NPI")
}

func TestGenerateCollectsAllValidationErrors(t *testing.T) {
	claim := validOutboundClaim("CLM001")
	claim.BillingProvider.NPI = ""
	claim.Subscriber.MemberID = ""
	claim.ServiceLines[0].ProcedureCode = ""
	claim.ServiceLines[0].ServiceDate = ""

	errs := ValidateOutboundClaim(&claim)
	assert.Len(t, errs, 4)
}

func TestGenerateSkipsInvalidClaimKeepsRest(t *testing.T) {
	good1 := validOutboundClaim("CLM001")
	bad := validOutboundClaim("CLM002")
	bad.ServiceLines = nil
	good2 := validOutboundClaim("CLM003")

	result, err := testGenerator().Generate([]OutboundClaim{good1, bad, good2})
	require.NoError(t, err)

	assert.Equal(t, []string{"CLM001", "CLM003"}, result.AcceptedClaims)
	require.Len(t, result.RejectedClaims, 1)
	assert.Equal(t, "CLM002", result.RejectedClaims[0].ClaimNumber)

	assert.Contains(t, result.Document, "CLM*CLM001*")
	assert.NotContains(t, result.Document, "CLM*CLM002*")
	assert.Contains(t, result.Document, "CLM*CLM003*")
}

func TestGenerateTransactionControlNumberIncrements(t *testing.T) {
	g := testGenerator()

	first, err := g.Generate([]OutboundClaim{validOutboundClaim("CLM001")})
	require.NoError(t, err)
	second, err := g.Generate([]OutboundClaim{validOutboundClaim("CLM002")})
	require.NoError(t, err)

	assert.Equal(t, "0001", first.TransactionControlNumber)
	assert.Equal(t, "0002", second.TransactionControlNumber)
}

func TestRandomControlNumberWidth(t *testing.T) {
	for i := 0; i < 20; i++ {
		icn := randomControlNumber(interchangeControlWidth)
		require.Len(t, icn, interchangeControlWidth)
		_, err := strconv.Atoi(icn)
		require.NoError(t, err)
	}
}

func TestFormatTransactionControlNumber(t *testing.T) {
	assert.Equal(t, "0007", formatTransactionControlNumber(7))
	assert.Equal(t, "0123", formatTransactionControlNumber(123))
}
