package redis

import (
	"context"
	"fmt"
	"time"

	"mymessages-post-service/internal/cache"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/model"
)

const postKeyPrefix = "post:"

type PostCache struct {
	client *Client
	log    *logger.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, log *logger.Logger, ttl time.Duration) cache.PostCache {
	return &PostCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func postKey(id int64) string {
	return fmt.Sprintf("%s%d", postKeyPrefix, id)
}

func (c *PostCache) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := c.client.Get(ctx, postKey(id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	return c.client.Set(ctx, postKey(post.ID), post, c.ttl)
}

func (c *PostCache) DeletePost(ctx context.Context, id int64) error {
	return c.client.Delete(ctx, postKey(id))
}
