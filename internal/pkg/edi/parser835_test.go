package edi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRemittance = "ISA*00*          *00*          *ZZ*MDMEDICAID     *ZZ*PROVIDER123    *240115*1200*^*00501*000012345*0*P*:~" +
	"GS*HP*MDMEDICAID*PROVIDER123*20240115*1200*987654*X*005010X221A1~" +
	"ST*835*0001~" +
	"BPR*I*1100.00*C*ACH*CCP*01*999999992*DA*123456*1512345678**01*999988880*DA*98765*20240115~" +
	"TRN*1*CHK12345*1512345678~" +
	"N1*PR*MARYLAND MEDICAID*PI*MDMEDICAID~" +
	"N1*PE*SUNRISE AUTISM SERVICES*XX*1234567890~" +
	"CLP*CLM001*1*800.00*600.00*100.00*MC*ICN001*11*1~" +
	"NM1*QC*1*DOE*JANE****MI*MBR001~" +
	"NM1*82*1*SMITH*ALICE****XX*1999999984~" +
	"DTM*232*20240101~" +
	"DTM*233*20240105~" +
	"CAS*CO*45*100*2*96*50~" +
	"SVC*HC:H2019:HM*400.00*300.00**4~" +
	"DTM*472*20240102~" +
	"CAS*PR*3*50~" +
	"SVC*HC:H2014*400.00*300.00**8~" +
	"DTM*472*20240103~" +
	"CLP*CLM002*4*300.00*0.00*0.00*MC*ICN002*11*1~" +
	"NM1*QC*1*ROE*RICHARD****MI*MBR002~" +
	"CAS*CO*29*300~" +
	"PLB*1234567890*20241231*WO:CLM099*25.00*L6*-5.50~" +
	"SE*23*0001~" +
	"GE*1*987654~" +
	"IEA*1*000012345~"

func TestParseEnvelopeAndPayment(t *testing.T) {
	result, err := NewRemittanceParser().Parse(sampleRemittance)
	require.NoError(t, err)
	require.Empty(t, result.Warnings)

	doc := result.Document
	assert.Equal(t, "000012345", doc.InterchangeControlNumber)
	assert.Equal(t, "987654", doc.GroupControlNumber)
	assert.Equal(t, "0001", doc.TransactionControlNumber)
	assert.Equal(t, "240115", doc.InterchangeDate)

	assert.True(t, doc.TotalPaymentAmount.Equal(decimal.RequireFromString("1100.00")))
	assert.Equal(t, "C", doc.CreditDebitFlag)
	assert.Equal(t, "ACH", doc.PaymentMethod)
	assert.Equal(t, "CHK12345", doc.CheckNumber)
	assert.Equal(t, "20240115", doc.CheckDate)

	assert.Equal(t, "MARYLAND MEDICAID", doc.Payer.Name)
	assert.Equal(t, "MDMEDICAID", doc.Payer.ID)
	assert.Equal(t, "SUNRISE AUTISM SERVICES", doc.Payee.Name)
	assert.Equal(t, "1234567890", doc.Payee.ID)
}

func TestParseClaimBoundaries(t *testing.T) {
	result, err := NewRemittanceParser().Parse(sampleRemittance)
	require.NoError(t, err)
	require.Len(t, result.Document.Claims, 2)

	first := result.Document.Claims[0]
	assert.Equal(t, "CLM001", first.ClaimNumber)
	assert.Equal(t, ClaimStatusProcessedPrimary, first.StatusCode)
	assert.True(t, first.TotalCharge.Equal(decimal.RequireFromString("800.00")))
	assert.True(t, first.PaymentAmount.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, first.PatientResponsibility.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "ICN001", first.PayerControlNumber)
	assert.Equal(t, "DOE, JANE", first.PatientName)
	assert.Equal(t, "MBR001", first.PatientID)
	assert.Equal(t, "SMITH, ALICE", first.RenderingProviderName)
	assert.Equal(t, "1999999984", first.RenderingProviderNPI)
	assert.Equal(t, "20240101", first.ServicePeriodStart)
	assert.Equal(t, "20240105", first.ServicePeriodEnd)
	assert.Len(t, first.ServiceLines, 2)

	second := result.Document.Claims[1]
	assert.Equal(t, "CLM002", second.ClaimNumber)
	assert.Equal(t, ClaimStatusDenied, second.StatusCode)
	assert.True(t, second.PaymentAmount.IsZero())
	assert.Empty(t, second.ServiceLines)
	require.Len(t, second.Adjustments, 1)
	assert.Equal(t, "29", second.Adjustments[0].ReasonCode)
}

func TestParseCASRepeatingTriples(t *testing.T) {
	result, err := NewRemittanceParser().Parse(sampleRemittance)
	require.NoError(t, err)

	adjustments := result.Document.Claims[0].Adjustments
	require.Len(t, adjustments, 2)

	assert.Equal(t, "CO", adjustments[0].GroupCode)
	assert.Equal(t, "45", adjustments[0].ReasonCode)
	assert.True(t, adjustments[0].Amount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "2", adjustments[0].Quantity)

	assert.Equal(t, "CO", adjustments[1].GroupCode)
	assert.Equal(t, "96", adjustments[1].ReasonCode)
	assert.True(t, adjustments[1].Amount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "", adjustments[1].Quantity)
}

func TestParseServiceLines(t *testing.T) {
	result, err := NewRemittanceParser().Parse(sampleRemittance)
	require.NoError(t, err)

	lines := result.Document.Claims[0].ServiceLines
	require.Len(t, lines, 2)

	assert.Equal(t, "H2019", lines[0].ProcedureCode)
	assert.Equal(t, []string{"HM"}, lines[0].Modifiers)
	assert.True(t, lines[0].ChargeAmount.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, lines[0].PaymentAmount.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, "4", lines[0].UnitsPaid)
	assert.Equal(t, "20240102", lines[0].ServiceDate)
	require.Len(t, lines[0].Adjustments, 1)
	assert.Equal(t, "PR", lines[0].Adjustments[0].GroupCode)
	assert.Equal(t, "3", lines[0].Adjustments[0].ReasonCode)

	assert.Equal(t, "H2014", lines[1].ProcedureCode)
	assert.Empty(t, lines[1].Modifiers)
	assert.Equal(t, "20240103", lines[1].ServiceDate)
	assert.Empty(t, lines[1].Adjustments)
}

func TestParseProviderAdjustments(t *testing.T) {
	result, err := NewRemittanceParser().Parse(sampleRemittance)
	require.NoError(t, err)

	require.Len(t, result.Document.ProviderAdjustments, 1)
	plb := result.Document.ProviderAdjustments[0]
	assert.Equal(t, "1234567890", plb.ProviderID)
	assert.Equal(t, "20241231", plb.FiscalPeriodDate)
	require.Len(t, plb.Details, 2)

	assert.Equal(t, "WO", plb.Details[0].ReasonCode)
	assert.Equal(t, "CLM099", plb.Details[0].ReferenceID)
	assert.True(t, plb.Details[0].Amount.Equal(decimal.RequireFromString("25.00")))

	assert.Equal(t, "L6", plb.Details[1].ReasonCode)
	assert.Equal(t, "", plb.Details[1].ReferenceID)
	assert.True(t, plb.Details[1].Amount.Equal(decimal.RequireFromString("-5.50")))
}

func TestParseMalformedSegmentsWarnAndSkip(t *testing.T) {
	raw := "ST*835*0001~" +
		"CLP*CLM001~" +
		"CLP*CLM002*1*100.00*80.00*0.00~" +
		"CAS*CO*45*abc~" +
		"SE*5*0001~"

	result, err := NewRemittanceParser().Parse(raw)
	require.NoError(t, err)

	require.Len(t, result.Document.Claims, 1)
	assert.Equal(t, "CLM002", result.Document.Claims[0].ClaimNumber)

	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "CLP")
	assert.Contains(t, result.Warnings[1], "non-numeric amount")
}

func TestParseClaimAtEndOfInput(t *testing.T) {
	raw := "ST*835*0001~" +
		"CLP*CLM001*1*100.00*80.00*0.00~" +
		"SVC*HC:H2015*100.00*80.00~" +
		"DTM*472*20240110~"

	result, err := NewRemittanceParser().Parse(raw)
	require.NoError(t, err)

	require.Len(t, result.Document.Claims, 1)
	require.Len(t, result.Document.Claims[0].ServiceLines, 1)
	assert.Equal(t, "20240110", result.Document.Claims[0].ServiceLines[0].ServiceDate)
}

func TestTotalAdjustmentAmount(t *testing.T) {
	result, err := NewRemittanceParser().Parse(sampleRemittance)
	require.NoError(t, err)

	// 100 + 50 claim-level on CLM001, 50 service-level, 300 on CLM002.
	assert.True(t, result.Document.TotalAdjustmentAmount().Equal(decimal.RequireFromString("500")))
}

func TestValidateMarylandMedicaid(t *testing.T) {
	t.Run("accepts allow-listed payer and waiver codes", func(t *testing.T) {
		result, err := NewRemittanceParser().Parse(sampleRemittance)
		require.NoError(t, err)

		assert.Empty(t, ValidateMarylandMedicaid(result.Document))
	})

	t.Run("rejects unknown payer and non-waiver procedure", func(t *testing.T) {
		doc := &RemittanceDocument{
			Payer: Party{ID: "AETNA01"},
			Claims: []RemitClaim{{
				ClaimNumber:  "CLM001",
				ServiceLines: []ServiceLine{{ProcedureCode: "99213"}},
			}},
		}

		errs := ValidateMarylandMedicaid(doc)
		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "AETNA01")
		assert.Contains(t, errs[1], "99213")
	})
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := NewRemittanceParser().Parse("")
	require.Error(t, err)
}
