package post_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) Handle(c *gin.Context) {
	filters := pageFilters(c.Query("page"), c.Query("pagesize"))

	posts, total, err := h.postService.ListPosts(c.Request.Context(), filters)
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fetching posts failed!"})
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Posts fetched successfully!",
		"posts":    posts,
		"maxPosts": total,
	})
}

// pageFilters translates page/pagesize query params into skip/limit bounds.
// Absent, non-numeric or non-positive values disable pagination and the full
// collection is returned.
func pageFilters(page, pageSize string) model.PostFilters {
	p, err := strconv.Atoi(page)
	if err != nil || p <= 0 {
		return model.PostFilters{}
	}
	ps, err := strconv.Atoi(pageSize)
	if err != nil || ps <= 0 {
		return model.PostFilters{}
	}

	limit := ps
	offset := ps * (p - 1)
	return model.PostFilters{Limit: &limit, Offset: &offset}
}
