package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agoralab-core/internal/application/dto"
	"agoralab-core/internal/application/service"
)

// PostHandler serves the blog post listing
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// GetPosts handles GET /posts
// @Summary List blog posts
// @Description Returns every blog post, newest first
// @Tags Posts
// @Accept json
// @Produce json
// @Success 200 {object} dto.PostListResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "fetch_failed",
			Message: "Failed to load posts",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToPostListResponse(posts))
}
