package claims

import (
	"clearclaim-service/internal/app/config"
	"clearclaim-service/internal/app/contracts"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/dto/requests"
	"clearclaim-service/internal/pkg/dto/responses"
	"clearclaim-service/internal/pkg/edi"
	"clearclaim-service/internal/pkg/exceptions"
	"clearclaim-service/internal/pkg/utils"
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type claimUsecase struct {
	GeneratorConfig     edi.GeneratorConfig
	ClearinghouseClient contracts.ClearinghouseClient
	Storage             contracts.Storage
	EventPublisher      contracts.EventPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	claimUsecaseInstance contracts.ClaimUsecase
	onceClaimUsecase     sync.Once
)

func NewClaimUsecase(
	clearinghouseClient contracts.ClearinghouseClient,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ClaimUsecase {
	onceClaimUsecase.Do(func() {
		claimUsecaseInstance = &claimUsecase{
			GeneratorConfig: edi.GeneratorConfig{
				SenderID:      internalConfig.EDI.SenderID,
				ReceiverID:    internalConfig.EDI.ReceiverID,
				SubmitterName: internalConfig.EDI.SubmitterName,
				SubmitterID:   internalConfig.EDI.SubmitterID,
				ReceiverName:  internalConfig.EDI.ReceiverName,
				ContactName:   internalConfig.EDI.ContactName,
				ContactPhone:  internalConfig.EDI.ContactPhone,
			},
			ClearinghouseClient: clearinghouseClient,
			Storage:             storage,
			EventPublisher:      eventPublisher,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return claimUsecaseInstance
}

// SubmitClaims generates one 837P from the batch, archives it, and hands it
// to the clearinghouse. Claims that fail per-claim validation are reported
// back as rejected without blocking the rest; generation fails only when no
// claim survives.
func (uc *claimUsecase) SubmitClaims(ctx context.Context, request *requests.ClaimSubmission) (*responses.ClaimSubmissionResult, error) {
	requestID := utils.GetRequestID(ctx)

	outbound := make([]edi.OutboundClaim, 0, len(request.Claims))
	for i := range request.Claims {
		claim, err := buildOutboundClaim(&request.Claims[i])
		if err != nil {
			return nil, err
		}
		outbound = append(outbound, *claim)
	}

	// Each submission gets its own generator, so interchange and group
	// control numbers never repeat across files.
	generated, err := edi.NewGenerator(uc.GeneratorConfig).Generate(outbound)
	if err != nil {
		return nil, exceptions.ErrGenerate837NoClaims(err)
	}

	uc.Log.Info("Claim file generated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingControlNumberKey, generated.InterchangeControlNumber),
		zap.Int(constvars.LoggingClaimCountKey, len(generated.AcceptedClaims)),
		zap.Int("rejected_count", len(generated.RejectedClaims)),
	)

	objectName := utils.GenerateArchiveObjectName(constvars.ArchiveDirectionOutbound, generated.InterchangeControlNumber)
	if _, err := uc.Storage.UploadDocument(ctx, []byte(generated.Document), objectName, constvars.MIMEApplicationEDI); err != nil {
		return nil, err
	}

	ack, err := uc.ClearinghouseClient.SubmitClaimFile(ctx, generated.Document, generated.InterchangeControlNumber)
	if err != nil {
		return nil, err
	}

	if err := uc.EventPublisher.PublishClaimsSubmitted(ctx, generated.InterchangeControlNumber, generated.AcceptedClaims); err != nil {
		uc.Log.Error("Failed to publish claims-submitted event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingControlNumberKey, generated.InterchangeControlNumber),
			zap.Error(err),
		)
	}

	result := &responses.ClaimSubmissionResult{
		InterchangeControlNumber: generated.InterchangeControlNumber,
		TransactionControlNumber: generated.TransactionControlNumber,
		AcceptedClaims:           generated.AcceptedClaims,
		SegmentCount:             generated.SegmentCount,
		ArchiveObjectName:        objectName,
		Clearinghouse:            ack,
	}
	for _, rejected := range generated.RejectedClaims {
		result.RejectedClaims = append(result.RejectedClaims, responses.RejectedClaim{
			ClaimNumber: rejected.ClaimNumber,
			Errors:      rejected.Errors,
		})
	}
	return result, nil
}

func buildOutboundClaim(request *requests.OutboundClaim) (*edi.OutboundClaim, error) {
	total, err := decimal.NewFromString(request.TotalAmount)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	claim := &edi.OutboundClaim{
		ClaimNumber:     request.ClaimNumber,
		TotalAmount:     total,
		StatementStart:  request.StatementStart,
		StatementEnd:    request.StatementEnd,
		FacilityCode:    request.FacilityCode,
		FrequencyCode:   request.FrequencyCode,
		BillingProvider: buildProvider(&request.BillingProvider),
		Subscriber: edi.Subscriber{
			MemberID:    request.Subscriber.MemberID,
			LastName:    request.Subscriber.LastName,
			FirstName:   request.Subscriber.FirstName,
			DateOfBirth: request.Subscriber.DateOfBirth,
			Gender:      request.Subscriber.Gender,
			Address:     buildAddress(&request.Subscriber.Address),
		},
		PayerName: request.PayerName,
		PayerID:   request.PayerID,
		Diagnoses: request.Diagnoses,
	}
	if request.ReferringProvider != nil {
		provider := buildProvider(request.ReferringProvider)
		claim.ReferringProvider = &provider
	}
	if request.RenderingProvider != nil {
		provider := buildProvider(request.RenderingProvider)
		claim.RenderingProvider = &provider
	}

	for i := range request.ServiceLines {
		line := &request.ServiceLines[i]
		charge, err := decimal.NewFromString(line.ChargeAmount)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		claim.ServiceLines = append(claim.ServiceLines, edi.OutboundServiceLine{
			ProcedureCode:    line.ProcedureCode,
			Modifiers:        line.Modifiers,
			ChargeAmount:     charge,
			Units:            line.Units,
			PlaceOfService:   line.PlaceOfService,
			DiagnosisPointer: line.DiagnosisPointer,
			PriorAuthNumber:  line.PriorAuthNumber,
			ServiceDate:      line.ServiceDate,
		})
	}
	return claim, nil
}

func buildProvider(request *requests.ClaimProvider) edi.Provider {
	return edi.Provider{
		OrganizationName: request.OrganizationName,
		LastName:         request.LastName,
		FirstName:        request.FirstName,
		NPI:              request.NPI,
		TaxID:            request.TaxID,
		Address:          buildAddress(&request.Address),
	}
}

func buildAddress(request *requests.ClaimAddress) edi.Address {
	return edi.Address{
		Line1: request.Line1,
		City:  request.City,
		State: request.State,
		Zip:   request.Zip,
	}
}
