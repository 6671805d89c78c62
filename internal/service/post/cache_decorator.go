package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mymessages-post-service/internal/cache"
	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/metrics"
	"mymessages-post-service/internal/model"
)

// PostServiceCacheDecorator keeps a redis projection of posts by id. Cache
// failures degrade to the wrapped service and never fail the request.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", result.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error) {
	// Pages are not cached; only the by-id projection is.
	return d.service.ListPosts(ctx, filters)
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, id int64, userID int64, update *model.UpdatePostDTO) error {
	if err := d.service.UpdatePost(ctx, id, userID, update); err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after update",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, id int64, userID int64) error {
	if err := d.service.DeletePost(ctx, id, userID); err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after delete",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}
