package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agoralab-core/internal/application/dto"
	"agoralab-core/internal/application/service"
)

// DiagnosticsHandler serves recorded load cycle history
type DiagnosticsHandler struct {
	diagnosticsService *service.DiagnosticsService
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(diagnosticsService *service.DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{diagnosticsService: diagnosticsService}
}

// GetLoadCycles handles GET /diagnostics/load-cycles
// @Summary Recent load cycles
// @Description Returns the most recently settled repository load cycles, newest first
// @Tags Diagnostics
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of cycles" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.LoadCycleListResponse
// @Failure 500 {object} ErrorResponse
// @Router /diagnostics/load-cycles [get]
func (h *DiagnosticsHandler) GetLoadCycles(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	cycles, err := h.diagnosticsService.RecentLoadCycles(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "fetch_failed",
			Message: "Failed to load diagnostics",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadCycleListResponse(cycles))
}
