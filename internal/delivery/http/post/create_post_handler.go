package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"mymessages-post-service/internal/delivery/http/middleware"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/model"
	"mymessages-post-service/internal/storage"
	"mymessages-post-service/internal/upload"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	files       storage.FileStorage
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, files storage.FileStorage, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		files:       files,
		validate:    validate,
		log:         log,
	}
}

type createPostRequestInternal struct {
	Title   string `validate:"required"`
	Content string
}

func (h *CreatePostHandler) Handle(c *gin.Context) {
	userID := middleware.UserID(c)

	req := createPostRequestInternal{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Create request validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Creating a post failed!"})
		return
	}

	// The image is mandatory and must classify and persist before any
	// record is written.
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.log.Debug("Create request carries no image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Creating a post failed!"})
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.log.Warn("Failed to close uploaded file", slog.String("error", err.Error()))
		}
	}()

	ext, err := upload.Classify(header.Header.Get("Content-Type"))
	if err != nil {
		h.log.Debug("Rejected upload",
			slog.String("content_type", header.Header.Get("Content-Type")),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Creating a post failed!"})
		return
	}

	name := upload.StorageName(header.Filename, ext)
	if err := h.files.Save(c.Request.Context(), name, file); err != nil {
		h.log.Error("Failed to store uploaded image",
			slog.String("name", name),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Creating a post failed!"})
		return
	}

	dto := &model.CreatePostDTO{
		CreatorID: userID,
		Title:     req.Title,
		Content:   req.Content,
		ImagePath: imageURL(c, name),
	}

	createdPost, err := h.postService.CreatePost(c.Request.Context(), dto)
	if err != nil {
		h.log.Error("Failed to create post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Creating a post failed!"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post added successfully!",
		"post":    createdPost,
	})
}
