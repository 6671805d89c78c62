package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/model"

	"github.com/jackc/pgx/v5/pgtype"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        p.nextID,
		Title:     post.Title,
		Content:   post.Content,
		ImagePath: post.ImagePath,
		CreatorID: post.CreatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	all := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		postCopy := *post
		all = append(all, &postCopy)
	}

	// Insertion order for deterministic tests; callers get no ordering guarantee.
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})

	if filters.Offset != nil {
		offset := *filters.Offset
		if offset >= len(all) {
			return []*model.Post{}, nil
		}
		all = all[offset:]
	}
	if filters.Limit != nil && *filters.Limit < len(all) {
		all = all[:*filters.Limit]
	}

	return all, nil
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return int64(len(p.posts)), nil
}

func (p *PostRepository) UpdateOwned(ctx context.Context, id int64, creatorID int64, update *model.UpdatePostDTO) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists || post.CreatorID != creatorID {
		return custom_errors.ErrForbidden
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.ImagePath != nil {
		post.ImagePath = *update.ImagePath
	}

	post.UpdatedAt = pgtype.Timestamp{Time: time.Now(), Valid: true}
	return nil
}

func (p *PostRepository) DeleteOwned(ctx context.Context, id int64, creatorID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists || post.CreatorID != creatorID {
		return custom_errors.ErrForbidden
	}

	delete(p.posts, post.ID)
	return nil
}
