package contracts

import (
	"clearclaim-service/internal/pkg/dto/requests"
	"clearclaim-service/internal/pkg/dto/responses"
	"context"
)

type ClaimUsecase interface {
	SubmitClaims(ctx context.Context, request *requests.ClaimSubmission) (*responses.ClaimSubmissionResult, error)
}
