package controllers

import (
	"clearclaim-service/internal/app/contracts"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/dto/requests"
	"clearclaim-service/internal/pkg/exceptions"
	"clearclaim-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RemittanceController struct {
	Log               *zap.Logger
	RemittanceUsecase contracts.RemittanceUsecase
}

var (
	remittanceControllerInstance *RemittanceController
	onceRemittanceController     sync.Once
)

func NewRemittanceController(logger *zap.Logger, remittanceUsecase contracts.RemittanceUsecase) *RemittanceController {
	onceRemittanceController.Do(func() {
		remittanceControllerInstance = &RemittanceController{
			Log:               logger,
			RemittanceUsecase: remittanceUsecase,
		}
	})
	return remittanceControllerInstance
}

func (ctrl *RemittanceController) PostRemittance(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request, err := ctrl.buildRemittanceRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	report, err := ctrl.RemittanceUsecase.PostRemittance(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to post remittance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RemittancePostedSuccessMessage, report)
}

func (ctrl *RemittanceController) PreviewRemittance(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request, err := ctrl.buildRemittanceRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	preview, err := ctrl.RemittanceUsecase.PreviewRemittance(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to preview remittance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemittancePreviewSuccessMessage, preview)
}

func (ctrl *RemittanceController) GetBatchReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	batchID := chi.URLParam(r, "batchID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	report, err := ctrl.RemittanceUsecase.GetBatchReport(ctx, batchID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch batch report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchIDKey, batchID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentBatchFetchedSuccessMessage, report)
}

// buildRemittanceRequest accepts either a JSON envelope or the raw EDI file
// body. Payers deliver 835 files as plain text, so the raw form avoids a
// pointless base64 or JSON-escaping step for integrations.
func (ctrl *RemittanceController) buildRemittanceRequest(r *http.Request) (*requests.PostRemittance, error) {
	contentType := r.Header.Get(constvars.HeaderContentType)

	if strings.HasPrefix(contentType, constvars.MIMEApplicationJSON) {
		request := new(requests.PostRemittance)
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		if err := utils.ValidateStruct(request); err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		return request, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, exceptions.ErrCannotReadRequestBody(err)
	}
	return &requests.PostRemittance{Document: string(body)}, nil
}
