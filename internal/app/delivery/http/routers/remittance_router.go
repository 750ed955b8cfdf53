package routers

import (
	"clearclaim-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRemittanceRoutes(router chi.Router, remittanceController *controllers.RemittanceController) {
	router.Post("/", remittanceController.PostRemittance)
	router.Post("/preview", remittanceController.PreviewRemittance)
	router.Get("/batches/{batchID}", remittanceController.GetBatchReport)
}
