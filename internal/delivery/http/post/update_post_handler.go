package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/delivery/http/middleware"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/model"
	"mymessages-post-service/internal/storage"
	"mymessages-post-service/internal/upload"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, userID int64, update *model.UpdatePostDTO) error
}

type UpdatePostHandler struct {
	postService PostUpdater
	files       storage.FileStorage
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostUpdater, files storage.FileStorage, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		files:       files,
		validate:    validate,
		log:         log,
	}
}

type updatePostRequestInternal struct {
	ID    int64  `validate:"required,gt=0"`
	Title string `validate:"required"`
}

type updatePostJSONBody struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImagePath string `json:"imagePath"`
}

func (h *UpdatePostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
		return
	}
	userID := middleware.UserID(c)

	var title, content string
	var imagePath *string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		title = c.PostForm("title")
		content = c.PostForm("content")
		// Without a new file the client-echoed path is kept as-is.
		if echoed := c.PostForm("imagePath"); echoed != "" {
			imagePath = &echoed
		}

		file, header, err := c.Request.FormFile("image")
		if err == nil {
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
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
				return
			}

			name := upload.StorageName(header.Filename, ext)
			if err := h.files.Save(c.Request.Context(), name, file); err != nil {
				h.log.Error("Failed to store uploaded image",
					slog.String("name", name),
					slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
				return
			}

			url := imageURL(c, name)
			imagePath = &url
		} else if !errors.Is(err, http.ErrMissingFile) {
			h.log.Debug("Failed to read multipart image field", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
			return
		}
	} else {
		var body updatePostJSONBody
		if err := c.ShouldBindJSON(&body); err != nil {
			h.log.Debug("Failed to bind update body", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
			return
		}
		title = body.Title
		content = body.Content
		if body.ImagePath != "" {
			imagePath = &body.ImagePath
		}
	}

	req := updatePostRequestInternal{ID: id, Title: title}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Update request validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
		return
	}

	dto := &model.UpdatePostDTO{
		Title:     &title,
		Content:   &content,
		ImagePath: imagePath,
	}

	err = h.postService.UpdatePost(c.Request.Context(), id, userID, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		h.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Updating a post failed!"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post updated successfully!"})
}
