package contracts

import (
	"clearclaim-service/internal/pkg/dto/responses"
	"context"
)

type ClearinghouseClient interface {
	SubmitClaimFile(ctx context.Context, document, interchangeControlNumber string) (*responses.ClearinghouseAck, error)
}
