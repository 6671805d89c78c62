package cache

import (
	"context"

	"mymessages-post-service/internal/model"
)

//go:generate mockery --name PostCache --dir . --output ../../mocks/cache --outpkg mocks --filename PostCache.go
type PostCache interface {
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id int64) error
}
