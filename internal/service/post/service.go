package post_service

import (
	"context"
	"errors"
	"log/slog"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/metrics"
	"mymessages-post-service/internal/model"
	post_repository "mymessages-post-service/internal/repository/post"
)

type PostService struct {
	postRepo post_repository.Repository
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewPostService(postRepo post_repository.Repository, log *logger.Logger, metrics metrics.MetricsProvider) *PostService {
	return &PostService{
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	newPost := &model.Post{
		Title:     post.Title,
		Content:   post.Content,
		ImagePath: post.ImagePath,
		CreatorID: post.CreatorID,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Error("Failed to create post",
			slog.Int64("creator_id", post.CreatorID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created",
		slog.Int64("id", createdPost.ID),
		slog.Int64("creator_id", createdPost.CreatorID))
	return createdPost, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			// Expected outcome, not a failure.
			s.metrics.IncrementPostOperations("get", true)
			return nil, err
		}
		s.metrics.IncrementPostOperations("get", false)
		s.log.Error("Failed to get post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error) {
	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, err
	}

	// Total is always the size of the full collection, never the page.
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to count posts", slog.String("error", err.Error()))
		return nil, 0, err
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, userID int64, update *model.UpdatePostDTO) error {
	err := s.postRepo.UpdateOwned(ctx, id, userID, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrForbidden) {
			s.metrics.IncrementPostOperations("update", false)
			s.log.Debug("Update rejected",
				slog.Int64("id", id),
				slog.Int64("user_id", userID))
			return err
		}
		s.metrics.IncrementPostOperations("update", false)
		s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		return err
	}

	s.metrics.IncrementPostOperations("update", true)
	s.log.Info("Post updated", slog.Int64("id", id), slog.Int64("user_id", userID))
	return nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64, userID int64) error {
	err := s.postRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrForbidden) {
			s.metrics.IncrementPostOperations("delete", false)
			s.log.Debug("Delete rejected",
				slog.Int64("id", id),
				slog.Int64("user_id", userID))
			return err
		}
		s.metrics.IncrementPostOperations("delete", false)
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		return err
	}

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Info("Post deleted", slog.Int64("id", id), slog.Int64("user_id", userID))
	return nil
}
