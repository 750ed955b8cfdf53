package contracts

import (
	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/edi"
	"context"
)

// PostingRepository applies a parsed remittance to the claim ledger. The
// whole posting runs inside one database transaction: any failure rolls the
// entire batch back.
type PostingRepository interface {
	PostRemittance(ctx context.Context, doc *edi.RemittanceDocument, archiveObjectName string) (*models.PostingSummary, error)
	FindBatchByID(ctx context.Context, batchID string) (*models.PaymentBatch, error)
	FindBatchByCheckNumber(ctx context.Context, checkNumber, payerID string) (*models.PaymentBatch, error)
	FindClaimPaymentsByBatchID(ctx context.Context, batchID string) ([]models.ClaimPayment, error)
}
