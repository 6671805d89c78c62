package post_http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/model"
	mockpost "mymessages-post-service/mocks/post"
	mockstorage "mymessages-post-service/mocks/storage"
)

func TestListPostsHandler(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	t.Run("NoParamsReturnsFullCollection", func(t *testing.T) {
		svc := new(mockpost.Service)
		router := newTestRouter(t, svc, new(mockstorage.FileStorage))

		posts := []*model.Post{
			{ID: 1, Title: "First", CreatorID: 7},
			{ID: 2, Title: "Second", CreatorID: 7},
		}
		svc.On("ListPosts", mock.Anything, model.PostFilters{}).Return(posts, int64(2), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Message  string        `json:"message"`
			Posts    []*model.Post `json:"posts"`
			MaxPosts int64         `json:"maxPosts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Posts fetched successfully!", body.Message)
		assert.Len(t, body.Posts, 2)
		assert.Equal(t, int64(2), body.MaxPosts)
		svc.AssertExpectations(t)
	})

	t.Run("PageAndPagesizeBecomeLimitAndOffset", func(t *testing.T) {
		svc := new(mockpost.Service)
		router := newTestRouter(t, svc, new(mockstorage.FileStorage))

		expected := model.PostFilters{Limit: intPtr(3), Offset: intPtr(3)}
		svc.On("ListPosts", mock.Anything, expected).Return([]*model.Post{}, int64(10), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts?page=2&pagesize=3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("InvalidPageDisablesPagination", func(t *testing.T) {
		svc := new(mockpost.Service)
		router := newTestRouter(t, svc, new(mockstorage.FileStorage))

		svc.On("ListPosts", mock.Anything, model.PostFilters{}).Return([]*model.Post{}, int64(0), nil)

		for _, query := range []string{
			"?page=abc&pagesize=3",
			"?page=2&pagesize=abc",
			"?page=0&pagesize=3",
			"?page=-1&pagesize=3",
			"?page=2",
		} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/posts"+query, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "query %s", query)
		}
		svc.AssertExpectations(t)
	})

	t.Run("NilPageMarshalsAsEmptyArray", func(t *testing.T) {
		svc := new(mockpost.Service)
		router := newTestRouter(t, svc, new(mockstorage.FileStorage))

		svc.On("ListPosts", mock.Anything, model.PostFilters{}).Return(nil, int64(0), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"posts":[]`)
	})

	t.Run("ServiceErrorIs500", func(t *testing.T) {
		svc := new(mockpost.Service)
		router := newTestRouter(t, svc, new(mockstorage.FileStorage))

		svc.On("ListPosts", mock.Anything, model.PostFilters{}).
			Return(nil, int64(0), custom_errors.ErrDatabaseQuery)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Fetching posts failed!")
	})
}
