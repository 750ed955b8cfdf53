package contracts

import (
	"clearclaim-service/internal/pkg/dto/requests"
	"clearclaim-service/internal/pkg/dto/responses"
	"context"
)

type RemittanceUsecase interface {
	PostRemittance(ctx context.Context, request *requests.PostRemittance) (*responses.PostingReport, error)
	PreviewRemittance(ctx context.Context, request *requests.PostRemittance) (*responses.RemittancePreview, error)
	GetBatchReport(ctx context.Context, batchID string) (*responses.BatchReport, error)
}
