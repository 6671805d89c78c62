package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/delivery/http/middleware"
	"mymessages-post-service/internal/logger"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64, userID int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Deleting a post failed!"})
		return
	}
	userID := middleware.UserID(c)

	err = h.postService.DeletePost(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		h.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Deleting a post failed!"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post deleted successfully!"})
}
