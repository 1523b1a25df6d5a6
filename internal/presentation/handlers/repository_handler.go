package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agoralab-core/internal/application/dto"
	"agoralab-core/internal/application/service"
)

// RepositoryHandler serves the repository listing
type RepositoryHandler struct {
	listing *service.Listing
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(listing *service.Listing) *RepositoryHandler {
	return &RepositoryHandler{listing: listing}
}

// GetRepositories handles GET /repositories
// @Summary List organization repositories
// @Description Returns one page of the merged repository listing, most starred first.
// @Description Upstream failures yield an empty listing with status "failed", not an error status.
// @Tags Repositories
// @Accept json
// @Produce json
// @Param page query int false "Page number, clamped to the available pages" minimum(1)
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /repositories [get]
func (h *RepositoryHandler) GetRepositories(c *gin.Context) {
	state := h.listing.Snapshot()

	pageStr, ok := c.GetQuery("page")
	if !ok {
		c.JSON(http.StatusOK, dto.ToRepositoryListResponse(state, state.View()))
		return
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_page",
			Message: "Page must be an integer",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToRepositoryListResponse(state, state.GoToPage(page).View()))
}
