package claims

import (
	"context"
	"strings"
	"testing"
	"time"

	"clearclaim-service/internal/app/config"
	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/dto/requests"
	"clearclaim-service/internal/pkg/dto/responses"
	"clearclaim-service/internal/pkg/edi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClearinghouse struct {
	documents []string
	err       error
}

func (f *fakeClearinghouse) SubmitClaimFile(ctx context.Context, document, interchangeControlNumber string) (*responses.ClearinghouseAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.documents = append(f.documents, document)
	return &responses.ClearinghouseAck{SubmissionID: "sub-1", Status: "accepted"}, nil
}

type fakeStorage struct {
	uploads []string
	err     error
}

func (f *fakeStorage) UploadDocument(ctx context.Context, content []byte, objectName, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, objectName)
	return objectName, nil
}

func (f *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	return "http://minio/" + objectName, nil
}

type fakeEventPublisher struct {
	submissions [][]string
}

func (f *fakeEventPublisher) PublishPostingCompleted(ctx context.Context, summary *models.PostingSummary) error {
	return nil
}

func (f *fakeEventPublisher) PublishClaimsSubmitted(ctx context.Context, interchangeControlNumber string, claimNumbers []string) error {
	f.submissions = append(f.submissions, claimNumbers)
	return nil
}

func newTestClaimUsecase(ch *fakeClearinghouse, storage *fakeStorage, publisher *fakeEventPublisher) *claimUsecase {
	return &claimUsecase{
		GeneratorConfig: edi.GeneratorConfig{
			SenderID:      "SUNRISEABA",
			ReceiverID:    "MDMEDICAID",
			SubmitterName: "SUNRISE AUTISM SERVICES",
			SubmitterID:   "SUB001",
			ReceiverName:  "MARYLAND MEDICAID",
		},
		ClearinghouseClient: ch,
		Storage:             storage,
		EventPublisher:      publisher,
		InternalConfig:      &config.InternalConfig{},
		Log:                 zap.NewNop(),
	}
}

func requestClaim(number string) requests.OutboundClaim {
	return requests.OutboundClaim{
		ClaimNumber:    number,
		TotalAmount:    "480.00",
		StatementStart: "20240101",
		StatementEnd:   "20240105",
		FacilityCode:   "12",
		BillingProvider: requests.ClaimProvider{
			OrganizationName: "SUNRISE AUTISM SERVICES",
			NPI:              "1234567890",
			TaxID:            "521234567",
			Address:          requests.ClaimAddress{Line1: "100 MAIN ST", City: "BALTIMORE", State: "MD", Zip: "21201"},
		},
		Subscriber: requests.ClaimSubscriber{
			MemberID:    "MBR001",
			LastName:    "DOE",
			FirstName:   "JANE",
			DateOfBirth: "20180704",
			Gender:      "F",
		},
		PayerName: "MARYLAND MEDICAID",
		PayerID:   "MDMEDICAID",
		Diagnoses: []string{"F840"},
		ServiceLines: []requests.OutboundServiceLine{
			{
				ProcedureCode:    "H2019",
				ChargeAmount:     "480.00",
				Units:            "8",
				PlaceOfService:   "12",
				DiagnosisPointer: "1",
				ServiceDate:      "20240102",
			},
		},
	}
}

func TestSubmitClaims(t *testing.T) {
	t.Run("generates, archives, submits, publishes", func(t *testing.T) {
		ch := &fakeClearinghouse{}
		storage := &fakeStorage{}
		publisher := &fakeEventPublisher{}
		uc := newTestClaimUsecase(ch, storage, publisher)

		result, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{requestClaim("CLM001")},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"CLM001"}, result.AcceptedClaims)
		assert.Empty(t, result.RejectedClaims)
		assert.Len(t, result.InterchangeControlNumber, 9)
		require.NotNil(t, result.Clearinghouse)
		assert.Equal(t, "sub-1", result.Clearinghouse.SubmissionID)

		require.Len(t, ch.documents, 1)
		assert.True(t, strings.HasPrefix(ch.documents[0], "ISA*"))
		assert.Len(t, storage.uploads, 1)
		assert.True(t, strings.HasPrefix(storage.uploads[0], "outbound/"))
		require.Len(t, publisher.submissions, 1)
		assert.Equal(t, []string{"CLM001"}, publisher.submissions[0])
	})

	t.Run("reports rejected claims alongside accepted ones", func(t *testing.T) {
		uc := newTestClaimUsecase(&fakeClearinghouse{}, &fakeStorage{}, &fakeEventPublisher{})

		bad := requestClaim("CLM002")
		bad.BillingProvider.NPI = ""

		result, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{requestClaim("CLM001"), bad},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"CLM001"}, result.AcceptedClaims)
		require.Len(t, result.RejectedClaims, 1)
		assert.Equal(t, "CLM002", result.RejectedClaims[0].ClaimNumber)
		assert.Contains(t, strings.Join(result.RejectedClaims[0].Errors, "; "), "NPI")
	})

	t.Run("fails when every claim is rejected", func(t *testing.T) {
		uc := newTestClaimUsecase(&fakeClearinghouse{}, &fakeStorage{}, &fakeEventPublisher{})

		bad := requestClaim("CLM001")
		bad.ServiceLines = nil

		_, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{bad},
		})
		require.Error(t, err)
	})

	t.Run("rejects malformed amounts before generation", func(t *testing.T) {
		uc := newTestClaimUsecase(&fakeClearinghouse{}, &fakeStorage{}, &fakeEventPublisher{})

		bad := requestClaim("CLM001")
		bad.TotalAmount = "four hundred"

		_, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{bad},
		})
		require.Error(t, err)
	})

	t.Run("assigns a fresh interchange control number per submission", func(t *testing.T) {
		uc := newTestClaimUsecase(&fakeClearinghouse{}, &fakeStorage{}, &fakeEventPublisher{})

		first, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{requestClaim("CLM001")},
		})
		require.NoError(t, err)

		second, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{requestClaim("CLM002")},
		})
		require.NoError(t, err)

		assert.NotEqual(t, first.InterchangeControlNumber, second.InterchangeControlNumber)
		assert.Equal(t, "0001", first.TransactionControlNumber)
		assert.Equal(t, "0001", second.TransactionControlNumber)
	})

	t.Run("surfaces clearinghouse failure without publishing", func(t *testing.T) {
		ch := &fakeClearinghouse{err: assert.AnError}
		publisher := &fakeEventPublisher{}
		uc := newTestClaimUsecase(ch, &fakeStorage{}, publisher)

		_, err := uc.SubmitClaims(context.Background(), &requests.ClaimSubmission{
			Claims: []requests.OutboundClaim{requestClaim("CLM001")},
		})
		require.Error(t, err)
		assert.Empty(t, publisher.submissions)
	})
}
