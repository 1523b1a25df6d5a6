package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agoralab-core/internal/application/service"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	listing *service.Listing
}

// NewHealthHandler creates a new health handler. listing may be nil.
func NewHealthHandler(listing *service.Listing) *HealthHandler {
	return &HealthHandler{listing: listing}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status of the service and the phase of the repository listing
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:  "healthy",
		Message: "Service is running",
	}
	if h.listing != nil {
		resp.Listing = h.listing.Snapshot().Status().String()
	}
	c.JSON(http.StatusOK, resp)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Listing string `json:"listing,omitempty"`
}
