package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/middleware"
)

// snapshotHandler handles HTTP requests for persistence commands.
type snapshotHandler struct {
	snapshotService portssvc.SnapshotSvc
}

// newSnapshotHandler creates a new snapshotHandler.
func newSnapshotHandler(ss portssvc.SnapshotSvc) *snapshotHandler {
	return &snapshotHandler{
		snapshotService: ss,
	}
}

// registerSnapshotRoutes registers routes related to snapshots.
func registerSnapshotRoutes(rg *gin.RouterGroup, snapshotService portssvc.SnapshotSvc) {
	h := newSnapshotHandler(snapshotService)

	snapshot := rg.Group("/snapshot")
	{
		snapshot.POST("/save", h.saveSnapshot)
		snapshot.POST("/reset", h.resetSnapshot)
	}
}

func (h *snapshotHandler) saveSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.snapshotService.Save(c.Request.Context()); err != nil {
		respondServiceError(c, logger, err, "Failed to save snapshot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *snapshotHandler) resetSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.snapshotService.Reset(c.Request.Context()); err != nil {
		respondServiceError(c, logger, err, "Failed to reset snapshot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
