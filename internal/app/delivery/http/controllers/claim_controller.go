package controllers

import (
	"clearclaim-service/internal/app/contracts"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/dto/requests"
	"clearclaim-service/internal/pkg/exceptions"
	"clearclaim-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ClaimController struct {
	Log          *zap.Logger
	ClaimUsecase contracts.ClaimUsecase
}

var (
	claimControllerInstance *ClaimController
	onceClaimController     sync.Once
)

func NewClaimController(logger *zap.Logger, claimUsecase contracts.ClaimUsecase) *ClaimController {
	onceClaimController.Do(func() {
		claimControllerInstance = &ClaimController{
			Log:          logger,
			ClaimUsecase: claimUsecase,
		}
	})
	return claimControllerInstance
}

func (ctrl *ClaimController) SubmitClaims(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.ClaimSubmission)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Debug("Claim submission received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingClaimCountKey, len(request.Claims)),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ClaimUsecase.SubmitClaims(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to submit claims",
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

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ClaimBatchSubmittedSuccessMessage, result)
}
