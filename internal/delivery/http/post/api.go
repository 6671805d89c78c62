package post_http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"mymessages-post-service/internal/logger"
	post_service "mymessages-post-service/internal/service/post"
	"mymessages-post-service/internal/storage"
)

var validate = validator.New()

type PostHTTPService struct {
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, files storage.FileStorage, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, files, validate, log),
		updatePostHandler: NewUpdatePostHandler(postService, files, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
	}
}

// RegisterRoutes wires the five post operations. Only mutations go through
// the auth gate.
func (s *PostHTTPService) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	posts := router.Group("/api/posts")
	posts.GET("", s.listPostsHandler.Handle)
	posts.GET("/:id", s.getPostHandler.Handle)
	posts.POST("", auth, s.createPostHandler.Handle)
	posts.PUT("/:id", auth, s.updatePostHandler.Handle)
	posts.DELETE("/:id", auth, s.deletePostHandler.Handle)
}

// imageURL builds the absolute path a stored image is served back under,
// rooted at the host the request came in on.
func imageURL(c *gin.Context, name string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/images/%s", scheme, c.Request.Host, name)
}
