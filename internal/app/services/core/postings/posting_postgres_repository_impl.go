package postings

import (
	"clearclaim-service/internal/app/contracts"
	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/edi"
	"clearclaim-service/internal/pkg/exceptions"
	"clearclaim-service/internal/pkg/queries"
	"clearclaim-service/internal/pkg/utils"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type postingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	postingRepositoryInstance contracts.PostingRepository
	oncePostingRepository     sync.Once
)

func NewPostingPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PostingRepository {
	oncePostingRepository.Do(func() {
		postingRepositoryInstance = &postingPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return postingRepositoryInstance
}

// PostRemittance writes the whole remittance inside one transaction. Claim
// rows are locked before payments apply, so two batches referencing the same
// claim serialize instead of double-posting. Any failure rolls back every
// row written for the batch.
func (repo *postingPostgresRepository) PostRemittance(ctx context.Context, doc *edi.RemittanceDocument, archiveObjectName string) (*models.PostingSummary, error) {
	requestID := utils.GetRequestID(ctx)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTransaction(err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	batchID := uuid.NewString()

	_, err = tx.ExecContext(ctx, queries.InsertPaymentBatch,
		batchID,
		constvars.PaymentBatchTypeEDI835,
		constvars.PaymentBatchStatusProcessing,
		doc.Payer.Name,
		doc.Payer.ID,
		doc.Payee.Name,
		doc.Payee.ID,
		doc.CheckNumber,
		doc.CheckDate,
		doc.PaymentMethod,
		doc.TotalPaymentAmount,
		decimal.Zero,
		decimal.Zero,
		doc.InterchangeControlNumber,
		len(doc.Claims),
		archiveObjectName,
		now,
		now,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	summary := &models.PostingSummary{
		BatchID:               batchID,
		CheckNumber:           doc.CheckNumber,
		PayerName:             doc.Payer.Name,
		TotalPaymentAmount:    doc.TotalPaymentAmount,
		TotalAdjustmentAmount: doc.TotalAdjustmentAmount(),
	}

	postedAmount := decimal.Zero
	for i := range doc.Claims {
		remitClaim := &doc.Claims[i]
		posted, err := repo.postClaim(ctx, tx, batchID, remitClaim, now)
		if err != nil {
			return nil, err
		}
		summary.TotalChargeAmount = summary.TotalChargeAmount.Add(remitClaim.TotalCharge)
		summary.Claims = append(summary.Claims, *posted)
		tallyDerivedStatus(summary, posted.DerivedStatus)
		if posted.Matched {
			summary.ClaimsPosted++
			postedAmount = postedAmount.Add(remitClaim.PaymentAmount)
		} else {
			summary.ClaimsUnmatched++
			summary.UnmatchedClaims = append(summary.UnmatchedClaims, remitClaim.ClaimNumber)
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("claim %s not found in ledger, payment skipped", remitClaim.ClaimNumber))
		}
	}

	for i := range doc.ProviderAdjustments {
		plb := &doc.ProviderAdjustments[i]
		if err := repo.postProviderAdjustment(ctx, tx, batchID, plb, now); err != nil {
			return nil, err
		}
		summary.ProviderAdjustments = append(summary.ProviderAdjustments, providerAdjustmentReports(plb)...)
	}

	_, err = tx.ExecContext(ctx, queries.UpdatePaymentBatchCompletion,
		batchID,
		constvars.PaymentBatchStatusCompleted,
		postedAmount,
		summary.TotalAdjustmentAmount,
		len(doc.Claims),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, exceptions.ErrPostgresDBCommitTransaction(err)
	}

	repo.Log.Info("Remittance batch posted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchIDKey, batchID),
		zap.String(constvars.LoggingCheckNumberKey, doc.CheckNumber),
		zap.Int(constvars.LoggingClaimCountKey, len(doc.Claims)),
		zap.Int("claims_unmatched", summary.ClaimsUnmatched),
	)
	return summary, nil
}

// postClaim applies one CLP loop: lock the ledger claim, record the payment
// detail, then roll the payment into the claim balance. A claim number with
// no ledger row writes nothing; it is reported back so the caller can flag
// the batch as partially unmatched.
func (repo *postingPostgresRepository) postClaim(ctx context.Context, tx *sql.Tx, batchID string, remitClaim *edi.RemitClaim, now time.Time) (*models.PostedClaim, error) {
	derived := DeriveClaimStatus(remitClaim.StatusCode, remitClaim.PaymentAmount, remitClaim.TotalCharge)
	adjustments, adjustmentTotal := claimAdjustmentReports(remitClaim)

	posted := &models.PostedClaim{
		ClaimNumber:           remitClaim.ClaimNumber,
		StatusCode:            remitClaim.StatusCode,
		StatusDescription:     edi.ClaimStatusDescriptions[remitClaim.StatusCode],
		DerivedStatus:         derived,
		TotalCharge:           remitClaim.TotalCharge,
		PaymentAmount:         remitClaim.PaymentAmount,
		PatientResponsibility: remitClaim.PatientResponsibility,
		AdjustmentAmount:      adjustmentTotal,
		Adjustments:           adjustments,
	}

	ledgerClaim, err := repo.lockClaim(ctx, tx, remitClaim.ClaimNumber)
	if err != nil {
		return nil, err
	}
	if ledgerClaim == nil {
		return posted, nil
	}
	posted.Matched = true

	claimPaymentID := uuid.NewString()
	_, err = tx.ExecContext(ctx, queries.InsertClaimPayment,
		claimPaymentID,
		batchID,
		ledgerClaim.ID,
		remitClaim.ClaimNumber,
		remitClaim.StatusCode,
		remitClaim.TotalCharge,
		remitClaim.PaymentAmount,
		remitClaim.PatientResponsibility,
		remitClaim.PayerControlNumber,
		remitClaim.FilingIndicator,
		now,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	for _, adj := range remitClaim.Adjustments {
		if err := repo.insertAdjustment(ctx, tx, claimPaymentID, "", constvars.AdjustmentLevelClaim, &adj, now); err != nil {
			return nil, err
		}
	}

	for i := range remitClaim.ServiceLines {
		line := &remitClaim.ServiceLines[i]
		lineID := uuid.NewString()
		_, err = tx.ExecContext(ctx, queries.InsertServiceLinePayment,
			lineID,
			claimPaymentID,
			line.ProcedureCode,
			strings.Join(line.Modifiers, ","),
			line.ChargeAmount,
			line.PaymentAmount,
			line.RevenueCode,
			line.UnitsPaid,
			line.ServiceDate,
			now,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBInsertData(err)
		}
		for _, adj := range line.Adjustments {
			if err := repo.insertAdjustment(ctx, tx, claimPaymentID, lineID, constvars.AdjustmentLevelService, &adj, now); err != nil {
				return nil, err
			}
		}
	}

	newPaid := ledgerClaim.PaidAmount.Add(remitClaim.PaymentAmount)
	_, err = tx.ExecContext(ctx, queries.UpdateClaimPosting,
		ledgerClaim.ID,
		newPaid,
		derived,
		now,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	return posted, nil
}

func (repo *postingPostgresRepository) lockClaim(ctx context.Context, tx *sql.Tx, claimNumber string) (*models.Claim, error) {
	var claim models.Claim
	err := tx.QueryRowContext(ctx, queries.GetClaimByNumberForUpdate, claimNumber).Scan(
		&claim.ID,
		&claim.ClaimNumber,
		&claim.PatientName,
		&claim.PatientID,
		&claim.PayerID,
		&claim.RenderingProviderNPI,
		&claim.BilledAmount,
		&claim.PaidAmount,
		&claim.Status,
		&claim.ServicePeriodStart,
		&claim.ServicePeriodEnd,
		&claim.CreatedAt,
		&claim.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &claim, nil
}

func (repo *postingPostgresRepository) insertAdjustment(ctx context.Context, tx *sql.Tx, claimPaymentID, lineID, level string, adj *edi.Adjustment, now time.Time) error {
	_, err := tx.ExecContext(ctx, queries.InsertPaymentAdjustment,
		uuid.NewString(),
		claimPaymentID,
		lineID,
		level,
		adj.GroupCode,
		adj.ReasonCode,
		adj.Amount,
		adj.Quantity,
		now,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *postingPostgresRepository) postProviderAdjustment(ctx context.Context, tx *sql.Tx, batchID string, plb *edi.ProviderAdjustment, now time.Time) error {
	adjustmentID := uuid.NewString()
	_, err := tx.ExecContext(ctx, queries.InsertProviderAdjustment,
		adjustmentID,
		batchID,
		plb.ProviderID,
		plb.FiscalPeriodDate,
		now,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}

	for _, detail := range plb.Details {
		_, err = tx.ExecContext(ctx, queries.InsertProviderAdjustmentDetail,
			uuid.NewString(),
			adjustmentID,
			detail.ReasonCode,
			detail.ReferenceID,
			detail.Amount,
			now,
		)
		if err != nil {
			return exceptions.ErrPostgresDBInsertData(err)
		}
	}
	return nil
}

func (repo *postingPostgresRepository) FindBatchByID(ctx context.Context, batchID string) (*models.PaymentBatch, error) {
	return repo.scanBatch(repo.DB.QueryRowContext(ctx, queries.GetPaymentBatchByID, batchID))
}

func (repo *postingPostgresRepository) FindBatchByCheckNumber(ctx context.Context, checkNumber, payerID string) (*models.PaymentBatch, error) {
	return repo.scanBatch(repo.DB.QueryRowContext(ctx, queries.GetPaymentBatchByCheckNumber, checkNumber, payerID))
}

func (repo *postingPostgresRepository) scanBatch(row *sql.Row) (*models.PaymentBatch, error) {
	var batch models.PaymentBatch
	err := row.Scan(
		&batch.ID,
		&batch.BatchType,
		&batch.Status,
		&batch.PayerName,
		&batch.PayerID,
		&batch.PayeeName,
		&batch.PayeeID,
		&batch.CheckNumber,
		&batch.CheckDate,
		&batch.PaymentMethod,
		&batch.TotalPaymentAmount,
		&batch.PostedAmount,
		&batch.AdjustmentAmount,
		&batch.InterchangeControlNumber,
		&batch.ClaimCount,
		&batch.ArchiveObjectName,
		&batch.CreatedAt,
		&batch.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &batch, nil
}

func (repo *postingPostgresRepository) FindClaimPaymentsByBatchID(ctx context.Context, batchID string) ([]models.ClaimPayment, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetClaimPaymentsByBatchID, batchID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var payments []models.ClaimPayment
	for rows.Next() {
		var payment models.ClaimPayment
		if err := rows.Scan(
			&payment.ID,
			&payment.BatchID,
			&payment.ClaimID,
			&payment.ClaimNumber,
			&payment.StatusCode,
			&payment.TotalCharge,
			&payment.PaymentAmount,
			&payment.PatientResponsibility,
			&payment.PayerControlNumber,
			&payment.FilingIndicator,
			&payment.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return payments, nil
}
