package contracts

import (
	"clearclaim-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	PublishPostingCompleted(ctx context.Context, summary *models.PostingSummary) error
	PublishClaimsSubmitted(ctx context.Context, interchangeControlNumber string, claimNumbers []string) error
}
