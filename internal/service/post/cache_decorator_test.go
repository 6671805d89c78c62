package post_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/metrics"
	"mymessages-post-service/internal/model"
	mockcache "mymessages-post-service/mocks/cache"
	mockpost "mymessages-post-service/mocks/post"
)

func newCacheDecorator(svc *mockpost.Service, postCache *mockcache.PostCache) Service {
	return NewPostServiceCacheDecorator(svc, postCache, logger.New("test"), metrics.NewNoopMetricsProvider())
}

func TestCacheDecorator_GetPostByID(t *testing.T) {
	t.Run("CacheHitSkipsService", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		cached := &model.Post{ID: 1, Title: "Cached"}
		postCache.On("GetPost", mock.Anything, int64(1)).Return(cached, nil)

		got, err := decorator.GetPostByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, cached, got)
		svc.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})

	t.Run("CacheMissFallsThroughAndBackfills", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		fromRepo := &model.Post{ID: 2, Title: "Fresh"}
		postCache.On("GetPost", mock.Anything, int64(2)).Return(nil, custom_errors.ErrCacheMiss)
		svc.On("GetPostByID", mock.Anything, int64(2)).Return(fromRepo, nil)
		postCache.On("SetPost", mock.Anything, fromRepo).Return(nil)

		got, err := decorator.GetPostByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, fromRepo, got)
		postCache.AssertExpectations(t)
		svc.AssertExpectations(t)
	})

	t.Run("CacheFailureDegradesToService", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		fromRepo := &model.Post{ID: 3}
		postCache.On("GetPost", mock.Anything, int64(3)).Return(nil, errors.New("redis down"))
		svc.On("GetPostByID", mock.Anything, int64(3)).Return(fromRepo, nil)
		postCache.On("SetPost", mock.Anything, fromRepo).Return(errors.New("redis down"))

		got, err := decorator.GetPostByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, fromRepo, got)
	})

	t.Run("ServiceErrorIsReturned", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		postCache.On("GetPost", mock.Anything, int64(4)).Return(nil, custom_errors.ErrCacheMiss)
		svc.On("GetPostByID", mock.Anything, int64(4)).Return(nil, custom_errors.ErrPostNotFound)

		got, err := decorator.GetPostByID(context.Background(), 4)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
		postCache.AssertNotCalled(t, "SetPost", mock.Anything, mock.Anything)
	})
}

func TestCacheDecorator_CreatePost(t *testing.T) {
	t.Run("CachesCreatedPost", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		dto := &model.CreatePostDTO{Title: "New"}
		created := &model.Post{ID: 10, Title: "New"}
		svc.On("CreatePost", mock.Anything, dto).Return(created, nil)
		postCache.On("SetPost", mock.Anything, created).Return(nil)

		got, err := decorator.CreatePost(context.Background(), dto)

		require.NoError(t, err)
		assert.Equal(t, created, got)
		postCache.AssertExpectations(t)
	})

	t.Run("SetFailureDoesNotFailCreate", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		created := &model.Post{ID: 11}
		svc.On("CreatePost", mock.Anything, mock.Anything).Return(created, nil)
		postCache.On("SetPost", mock.Anything, created).Return(errors.New("redis down"))

		got, err := decorator.CreatePost(context.Background(), &model.CreatePostDTO{})

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("ServiceErrorSkipsCache", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		svc.On("CreatePost", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		_, err := decorator.CreatePost(context.Background(), &model.CreatePostDTO{})

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		postCache.AssertNotCalled(t, "SetPost", mock.Anything, mock.Anything)
	})
}

func TestCacheDecorator_ListPosts(t *testing.T) {
	svc := new(mockpost.Service)
	postCache := new(mockcache.PostCache)
	decorator := newCacheDecorator(svc, postCache)

	page := []*model.Post{{ID: 1}, {ID: 2}}
	svc.On("ListPosts", mock.Anything, model.PostFilters{}).Return(page, int64(2), nil)

	posts, total, err := decorator.ListPosts(context.Background(), model.PostFilters{})

	require.NoError(t, err)
	assert.Equal(t, page, posts)
	assert.Equal(t, int64(2), total)
	postCache.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}

func TestCacheDecorator_UpdatePost(t *testing.T) {
	t.Run("InvalidatesCacheOnSuccess", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		update := &model.UpdatePostDTO{}
		svc.On("UpdatePost", mock.Anything, int64(1), int64(7), update).Return(nil)
		postCache.On("DeletePost", mock.Anything, int64(1)).Return(nil)

		err := decorator.UpdatePost(context.Background(), 1, 7, update)

		require.NoError(t, err)
		postCache.AssertExpectations(t)
	})

	t.Run("ForbiddenLeavesCacheAlone", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		svc.On("UpdatePost", mock.Anything, int64(1), int64(8), mock.Anything).
			Return(custom_errors.ErrForbidden)

		err := decorator.UpdatePost(context.Background(), 1, 8, &model.UpdatePostDTO{})

		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		postCache.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
	})
}

func TestCacheDecorator_DeletePost(t *testing.T) {
	t.Run("InvalidatesCacheOnSuccess", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		svc.On("DeletePost", mock.Anything, int64(1), int64(7)).Return(nil)
		postCache.On("DeletePost", mock.Anything, int64(1)).Return(nil)

		err := decorator.DeletePost(context.Background(), 1, 7)

		require.NoError(t, err)
		postCache.AssertExpectations(t)
	})

	t.Run("InvalidationFailureDoesNotFailDelete", func(t *testing.T) {
		svc := new(mockpost.Service)
		postCache := new(mockcache.PostCache)
		decorator := newCacheDecorator(svc, postCache)

		svc.On("DeletePost", mock.Anything, int64(2), int64(7)).Return(nil)
		postCache.On("DeletePost", mock.Anything, int64(2)).Return(errors.New("redis down"))

		err := decorator.DeletePost(context.Background(), 2, 7)

		assert.NoError(t, err)
	})
}
