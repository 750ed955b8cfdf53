package remittances

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
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type remittanceUsecase struct {
	PostingRepository contracts.PostingRepository
	RedisRepository   contracts.RedisRepository
	Storage           contracts.Storage
	EventPublisher    contracts.EventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	remittanceUsecaseInstance contracts.RemittanceUsecase
	onceRemittanceUsecase     sync.Once
)

func NewRemittanceUsecase(
	postingRepository contracts.PostingRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RemittanceUsecase {
	onceRemittanceUsecase.Do(func() {
		remittanceUsecaseInstance = &remittanceUsecase{
			PostingRepository: postingRepository,
			RedisRepository:   redisRepository,
			Storage:           storage,
			EventPublisher:    eventPublisher,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return remittanceUsecaseInstance
}

// PostRemittance runs the full pipeline: parse, validate, guard against
// duplicates, archive the raw file, post the batch, publish the completion
// event. The dedup key is released again if posting fails so a corrected
// retry of the same check is not locked out.
func (uc *remittanceUsecase) PostRemittance(ctx context.Context, request *requests.PostRemittance) (*responses.PostingReport, error) {
	requestID := utils.GetRequestID(ctx)

	result, err := edi.NewRemittanceParser().Parse(request.Document)
	if err != nil {
		return nil, err
	}
	doc := result.Document

	uc.Log.Info("Remittance parsed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckNumberKey, doc.CheckNumber),
		zap.String(constvars.LoggingPayerIDKey, doc.Payer.ID),
		zap.Int(constvars.LoggingClaimCountKey, len(doc.Claims)),
		zap.Int(constvars.LoggingWarningCountKey, len(result.Warnings)),
	)

	if uc.InternalConfig.EDI.EnforceMarylandMedicaid {
		if violations := edi.ValidateMarylandMedicaid(doc); len(violations) > 0 {
			return nil, exceptions.ErrRemittanceValidation(errors.New(strings.Join(violations, "; ")))
		}
	}

	if existing, err := uc.PostingRepository.FindBatchByCheckNumber(ctx, doc.CheckNumber, doc.Payer.ID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, exceptions.ErrDuplicateRemittance(fmt.Errorf("check %s from payer %s posted as batch %s", doc.CheckNumber, doc.Payer.ID, existing.ID))
	}

	dedupKey := dedupKey(doc.Payer.ID, doc.CheckNumber)
	dedupWindow := time.Duration(uc.InternalConfig.EDI.DedupWindowInHours) * time.Hour
	acquired, err := uc.RedisRepository.TrySetNX(ctx, dedupKey, requestID, dedupWindow)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDuplicateRemittance(fmt.Errorf("check %s from payer %s is already being posted", doc.CheckNumber, doc.Payer.ID))
	}

	objectName := utils.GenerateArchiveObjectName(constvars.ArchiveDirectionInbound, doc.InterchangeControlNumber)
	if _, err := uc.Storage.UploadDocument(ctx, []byte(request.Document), objectName, constvars.MIMEApplicationEDI); err != nil {
		uc.releaseDedupKey(ctx, dedupKey, requestID)
		return nil, err
	}
	uc.Log.Debug("Remittance archived",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	summary, err := uc.PostingRepository.PostRemittance(ctx, doc, objectName)
	if err != nil {
		uc.releaseDedupKey(ctx, dedupKey, requestID)
		return nil, err
	}
	summary.Warnings = append(result.Warnings, summary.Warnings...)

	if err := uc.EventPublisher.PublishPostingCompleted(ctx, summary); err != nil {
		// Posting already committed; a lost event must not undo it.
		uc.Log.Error("Failed to publish posting-completed event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchIDKey, summary.BatchID),
			zap.Error(err),
		)
	}

	return &responses.PostingReport{
		Summary:           summary,
		ArchiveObjectName: objectName,
	}, nil
}

// PreviewRemittance parses and validates without writing anything.
func (uc *remittanceUsecase) PreviewRemittance(ctx context.Context, request *requests.PostRemittance) (*responses.RemittancePreview, error) {
	result, err := edi.NewRemittanceParser().Parse(request.Document)
	if err != nil {
		return nil, err
	}
	doc := result.Document

	preview := &responses.RemittancePreview{
		CheckNumber:        doc.CheckNumber,
		CheckDate:          doc.CheckDate,
		PayerName:          doc.Payer.Name,
		PayerID:            doc.Payer.ID,
		PayeeName:          doc.Payee.Name,
		PaymentMethod:      edi.PaymentMethodDescriptions[doc.PaymentMethod],
		TotalPaymentAmount: doc.TotalPaymentAmount.StringFixed(2),
		Warnings:           result.Warnings,
	}
	if uc.InternalConfig.EDI.EnforceMarylandMedicaid {
		preview.ValidationErrors = edi.ValidateMarylandMedicaid(doc)
	}

	for _, claim := range doc.Claims {
		preview.Claims = append(preview.Claims, responses.RemittanceClaimView{
			ClaimNumber:       claim.ClaimNumber,
			StatusCode:        claim.StatusCode,
			StatusDescription: edi.ClaimStatusDescriptions[claim.StatusCode],
			PatientName:       claim.PatientName,
			TotalCharge:       claim.TotalCharge.StringFixed(2),
			PaymentAmount:     claim.PaymentAmount.StringFixed(2),
			ServiceLineCount:  len(claim.ServiceLines),
		})
	}
	return preview, nil
}

func (uc *remittanceUsecase) GetBatchReport(ctx context.Context, batchID string) (*responses.BatchReport, error) {
	batch, err := uc.PostingRepository.FindBatchByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, exceptions.ErrBatchNotFound(fmt.Errorf("batch %s", batchID))
	}

	payments, err := uc.PostingRepository.FindClaimPaymentsByBatchID(ctx, batchID)
	if err != nil {
		return nil, err
	}

	return &responses.BatchReport{
		Batch:    batch,
		Payments: payments,
	}, nil
}

func (uc *remittanceUsecase) releaseDedupKey(ctx context.Context, key, requestID string) {
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Log.Warn("Failed to release remittance dedup key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("dedup_key", key),
			zap.Error(err),
		)
	}
}

func dedupKey(payerID, checkNumber string) string {
	return fmt.Sprintf("remittance:dedup:%s:%s", payerID, checkNumber)
}
