package clearinghouse

import (
	"clearclaim-service/internal/app/config"
	"clearclaim-service/internal/app/contracts"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/dto/responses"
	"clearclaim-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type clearinghouseClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClearinghouseClient(internalConfig *config.InternalConfig, log *zap.Logger) contracts.ClearinghouseClient {
	return &clearinghouseClient{
		BaseUrl: internalConfig.Clearinghouse.BaseUrl,
		APIKey:  internalConfig.Clearinghouse.APIKey,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Clearinghouse.TimeoutInSeconds) * time.Second,
		},
		Log: log,
	}
}

// SubmitClaimFile posts the raw 837 document to the clearinghouse intake
// endpoint. Transport and non-2xx failures are surfaced to the caller; the
// service does not retry on its own.
func (c *clearinghouseClient) SubmitClaimFile(ctx context.Context, document, interchangeControlNumber string) (*responses.ClearinghouseAck, error) {
	url := fmt.Sprintf("%s/claims/files", strings.TrimRight(c.BaseUrl, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(document))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationEDI)
	req.Header.Set("X-Api-Key", c.APIKey)
	req.Header.Set("X-Interchange-Control-Number", interchangeControlNumber)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrClearinghouseStatus(fmt.Errorf("submit claim file: status %d", resp.StatusCode), resp.StatusCode)
	}

	var ack responses.ClearinghouseAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, exceptions.ErrClearinghouseDecode(err)
	}

	c.Log.Info("Claim file accepted by clearinghouse",
		zap.String(constvars.LoggingControlNumberKey, interchangeControlNumber),
		zap.String("submission_id", ack.SubmissionID),
	)
	return &ack, nil
}
