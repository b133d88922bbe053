package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/dto"
	"github.com/finbook-dev/finbook/internal/middleware"
)

// receivableHandler handles HTTP requests related to receivables.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
	ledgerService     portssvc.LedgerSvc
}

// newReceivableHandler creates a new receivableHandler.
func newReceivableHandler(rs portssvc.ReceivableSvcFacade, ls portssvc.LedgerSvc) *receivableHandler {
	return &receivableHandler{
		receivableService: rs,
		ledgerService:     ls,
	}
}

// registerReceivableRoutes registers routes related to receivables.
func registerReceivableRoutes(rg *gin.RouterGroup, receivableService portssvc.ReceivableSvcFacade, ledgerService portssvc.LedgerSvc) {
	h := newReceivableHandler(receivableService, ledgerService)

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.addReceivable)
		receivables.GET("", h.listReceivables)
		receivables.GET("/:id", h.getReceivable)
		receivables.POST("/:id/receive", h.receiveReceivable)
	}
}

func (h *receivableHandler) addReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivable, err := h.receivableService.AddReceivable(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add receivable")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceivableResponse(*receivable))
}

func (h *receivableHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receivables, err := h.receivableService.ListReceivables(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list receivables")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponses(receivables))
}

func (h *receivableHandler) getReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	receivable, err := h.receivableService.GetReceivableByID(c.Request.Context(), receivableID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve receivable")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponse(*receivable))
}

func (h *receivableHandler) receiveReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	var req dto.ReceiveFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReceiveReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivable, txn, err := h.ledgerService.ReceiveReceivable(c.Request.Context(), receivableID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to receive receivable payment")
		return
	}

	c.JSON(http.StatusOK, dto.ReceivableReceiptResponse{
		Receivable:  dto.ToReceivableResponse(*receivable),
		Transaction: dto.ToTransactionResponse(*txn),
	})
}
