package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook-dev/finbook/internal/core/domain"
	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/dto"
	"github.com/finbook-dev/finbook/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/networth", h.getNetWorth)
		reports.GET("/monthly", h.getMonthlySummary)
		reports.GET("/daily", h.getDailySummary)
		reports.GET("/history", h.getHistory)
		reports.GET("/yearly", h.getYearlyStatements)
	}
}

func (h *reportingHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.NetWorth(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute net worth")
		return
	}

	c.JSON(http.StatusOK, dto.ToNetWorthResponse(*report))
}

func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.CurrentMonthSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthSummaryResponse(*summary))
}

// getDailySummary reports one day's totals. The date query parameter
// defaults to today.
func (h *reportingHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := domain.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date parameter: " + err.Error()})
			return
		}
		date = parsed
	}

	summary, err := h.reportingService.DailySummary(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute daily summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(*summary))
}

func (h *reportingHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	history, err := h.reportingService.HistoryByMonth(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute history")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthSummaryResponses(history))
}

func (h *reportingHandler) getYearlyStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statements, err := h.reportingService.YearlyStatements(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute yearly statements")
		return
	}

	c.JSON(http.StatusOK, dto.ToYearlyStatementResponses(statements))
}
