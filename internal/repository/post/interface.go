package post_repository

import (
	"context"
	"mymessages-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	Count(ctx context.Context) (int64, error)
	// UpdateOwned applies the update only when the post belongs to creatorID.
	// A zero-match result is ErrForbidden whether the post is missing or
	// owned by someone else.
	UpdateOwned(ctx context.Context, id int64, creatorID int64, update *model.UpdatePostDTO) error
	DeleteOwned(ctx context.Context, id int64, creatorID int64) error
}
