package post_service

import (
	"context"

	"mymessages-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error)
	UpdatePost(ctx context.Context, id int64, userID int64, update *model.UpdatePostDTO) error
	DeletePost(ctx context.Context, id int64, userID int64) error
}
