package routers

import (
	"clearclaim-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachClaimRoutes(router chi.Router, claimController *controllers.ClaimController) {
	router.Post("/submissions", claimController.SubmitClaims)
}
