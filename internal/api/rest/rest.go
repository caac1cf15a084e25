package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dsc-protocol/dsc-indexer/internal/api/middleware"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
)

// SetupRoutes configures all REST API routes. cache wraps the public reads and may be nil
func SetupRoutes(router gin.IRouter, handler Handler, auth *middleware.Authenticator, cache gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	reads := v1.Group("")
	if cache != nil {
		reads.Use(cache)
	}
	{
		reads.GET("/protocol-stats", handler.GetProtocolStats)
		reads.GET("/monthly-stats", handler.ListMonthlyStats)
		reads.GET("/monthly-stats/:id", handler.GetMonthlyStats)
		reads.GET("/users", handler.ListUsers)
		reads.GET("/users/:address", handler.GetUser)

		reads.GET("/mints", handler.ListInteractions(types.InteractionMint))
		reads.GET("/burns", handler.ListInteractions(types.InteractionBurn))
		reads.GET("/collateral-deposits", handler.ListInteractions(types.InteractionDeposit))
		reads.GET("/collateral-redemptions", handler.ListInteractions(types.InteractionRedemption))
	}

	// Workflow triggers (requires authentication)
	v1.POST("/backfill", middleware.Auth(auth), handler.TriggerBackfill)
	v1.POST("/audit", middleware.Auth(auth), handler.TriggerAudit)
}
