package routers

import (
	"clearclaim-service/internal/app/config"
	"clearclaim-service/internal/app/delivery/http/controllers"
	"clearclaim-service/internal/app/delivery/http/middlewares"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	remittanceController *controllers.RemittanceController,
	claimController *controllers.ClaimController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, map[string]string{
			"version": internalConfig.App.Version,
		})
	})

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/"+constvars.ResourceRemittances, func(r chi.Router) {
			attachRemittanceRoutes(r, remittanceController)
		})

		r.Route("/"+constvars.ResourceClaims, func(r chi.Router) {
			attachClaimRoutes(r, claimController)
		})
	})
}
