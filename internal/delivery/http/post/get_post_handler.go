package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *GetPostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fetching a post failed!"})
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			// Absence is an expected outcome, not an error.
			c.Status(http.StatusNoContent)
			return
		}
		h.log.Error("Failed to get post", slog.Int64("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fetching a post failed!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post fetched successfully!",
		"post":    post,
	})
}
