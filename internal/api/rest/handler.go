package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/executor"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetProtocolStats returns the protocol-wide totals
	// GET /api/v1/protocol-stats
	GetProtocolStats(c *gin.Context)

	// ListMonthlyStats returns the monthly buckets, newest first by default
	// GET /api/v1/monthly-stats?limit=<limit>&offset=<offset>&order=<order>
	ListMonthlyStats(c *gin.Context)

	// GetMonthlyStats returns one month
	// GET /api/v1/monthly-stats/:id
	GetMonthlyStats(c *gin.Context)

	// ListUsers returns users
	// GET /api/v1/users?order_by=<field>&order=<order>&limit=<limit>&offset=<offset>
	ListUsers(c *gin.Context)

	// GetUser returns one user by address
	// GET /api/v1/users/:address
	GetUser(c *gin.Context)

	// ListInteractions returns a handler for one interaction collection
	// GET /api/v1/mints?user=<address>&token=<address>&timestamp_gte=<ts>&timestamp_lte=<ts>&order_by=<field>&order=<order>&limit=<limit>&offset=<offset>
	ListInteractions(kind types.InteractionKind) gin.HandlerFunc

	// TriggerBackfill starts a historical backfill (requires authentication)
	// POST /api/v1/backfill
	TriggerBackfill(c *gin.Context)

	// TriggerAudit starts a consistency audit (requires authentication)
	// POST /api/v1/audit
	TriggerAudit(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) GetProtocolStats(c *gin.Context) {
	stats, err := h.executor.GetProtocolStats(c.Request.Context(), domain.PROTOCOL_STATS_ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if stats == nil {
		respondNotFound(c, "Protocol stats not found", "no events indexed yet")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *handler) ListMonthlyStats(c *gin.Context) {
	query, err := ParseListMonthlyStatsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListMonthlyStats(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetMonthlyStats(c *gin.Context) {
	id := c.Param("id")

	stats, err := h.executor.GetMonthlyStats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if stats == nil {
		respondNotFound(c, "Monthly stats not found", id)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *handler) ListUsers(c *gin.Context) {
	query, err := ParseListUsersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListUsers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetUser(c *gin.Context) {
	address := c.Param("address")

	user, err := h.executor.GetUser(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondNotFound(c, "User not found", address)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *handler) ListInteractions(kind types.InteractionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, err := ParseListInteractionsQuery(c)
		if err != nil {
			respondValidationError(c, err.Error())
			return
		}

		response, err := h.executor.ListInteractions(c.Request.Context(), kind, query)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

func (h *handler) TriggerBackfill(c *gin.Context) {
	var req dto.TriggerBackfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.TriggerBackfill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

func (h *handler) TriggerAudit(c *gin.Context) {
	response, err := h.executor.TriggerAudit(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "dsc-indexer-api",
	})
}
