package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook-dev/finbook/internal/core/domain"
	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/dto"
	"github.com/finbook-dev/finbook/internal/middleware"
)

// viewHandler handles HTTP requests for the view router.
type viewHandler struct {
	viewService portssvc.ViewSvc
}

// newViewHandler creates a new viewHandler.
func newViewHandler(vs portssvc.ViewSvc) *viewHandler {
	return &viewHandler{
		viewService: vs,
	}
}

// registerViewRoutes registers routes related to views.
func registerViewRoutes(rg *gin.RouterGroup, viewService portssvc.ViewSvc) {
	h := newViewHandler(viewService)

	views := rg.Group("/views")
	{
		views.GET("", h.listViews)
		views.PUT("/active", h.selectView)
		views.GET("/:view", h.getView)
	}
}

// listViews returns every navigable view and which one is active.
func (h *viewHandler) listViews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"views":  domain.ViewTypes(),
		"active": h.viewService.ActiveView(c.Request.Context()),
	})
}

// selectView switches the active view and returns its payload, so a single
// round trip covers a navigation tap.
func (h *viewHandler) selectView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectView", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.viewService.SelectView(c.Request.Context(), req.View); err != nil {
		respondServiceError(c, logger, err, "Failed to select view")
		return
	}

	payload, err := h.viewService.GetView(c.Request.Context(), req.View)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assemble view")
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *viewHandler) getView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	view := domain.ViewType(c.Param("view"))

	payload, err := h.viewService.GetView(c.Request.Context(), view)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assemble view")
		return
	}

	c.JSON(http.StatusOK, payload)
}
