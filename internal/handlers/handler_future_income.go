package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/dto"
	"github.com/finbook-dev/finbook/internal/middleware"
)

// futureIncomeHandler handles HTTP requests related to future incomes.
type futureIncomeHandler struct {
	futureIncomeService portssvc.FutureIncomeSvcFacade
	ledgerService       portssvc.LedgerSvc
}

// newFutureIncomeHandler creates a new futureIncomeHandler.
func newFutureIncomeHandler(fs portssvc.FutureIncomeSvcFacade, ls portssvc.LedgerSvc) *futureIncomeHandler {
	return &futureIncomeHandler{
		futureIncomeService: fs,
		ledgerService:       ls,
	}
}

// registerFutureIncomeRoutes registers routes related to future incomes.
func registerFutureIncomeRoutes(rg *gin.RouterGroup, futureIncomeService portssvc.FutureIncomeSvcFacade, ledgerService portssvc.LedgerSvc) {
	h := newFutureIncomeHandler(futureIncomeService, ledgerService)

	incomes := rg.Group("/future-incomes")
	{
		incomes.POST("", h.addFutureIncome)
		incomes.GET("", h.listFutureIncomes)
		incomes.GET("/:id", h.getFutureIncome)
		incomes.POST("/:id/receive", h.receiveFutureIncome)
	}
}

func (h *futureIncomeHandler) addFutureIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFutureIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddFutureIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.futureIncomeService.AddFutureIncome(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add future income")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFutureIncomeResponse(*income))
}

func (h *futureIncomeHandler) listFutureIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	incomes, err := h.futureIncomeService.ListFutureIncomes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list future incomes")
		return
	}

	c.JSON(http.StatusOK, dto.ToFutureIncomeResponses(incomes))
}

func (h *futureIncomeHandler) getFutureIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	futureIncomeID := c.Param("id")

	income, err := h.futureIncomeService.GetFutureIncomeByID(c.Request.Context(), futureIncomeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve future income")
		return
	}

	c.JSON(http.StatusOK, dto.ToFutureIncomeResponse(*income))
}

func (h *futureIncomeHandler) receiveFutureIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	futureIncomeID := c.Param("id")

	var req dto.ReceiveFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReceiveFutureIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, txn, err := h.ledgerService.ReceiveFutureIncome(c.Request.Context(), futureIncomeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to receive future income payment")
		return
	}

	c.JSON(http.StatusOK, dto.FutureIncomeReceiptResponse{
		FutureIncome: dto.ToFutureIncomeResponse(*income),
		Transaction:  dto.ToTransactionResponse(*txn),
	})
}
