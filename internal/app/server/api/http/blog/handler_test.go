package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server/api/http/middleware/auth"
	"blogkeeper/internal/domain/blog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, author string, entry blog.Entry) (blog.Blog, error) {
	args := m.Called(ctx, author, entry)
	return args.Get(0).(blog.Blog), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]blog.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Entry), args.Error(1)
}

func (m *MockService) ListRaw(ctx context.Context) ([]blog.Blog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]blog.Blog), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se interface{ GetStatus() int }
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_create(t *testing.T) {
	entry := blog.Entry{Title: "t", Content: "secret"}

	t.Run("author comes from admitted subject", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, "a@x.com", entry).Return(blog.Blog{}, nil)
		h := NewHandler(svc, slog.Default(), nil, nil)

		input := &createInput{}
		input.Body.Title = entry.Title
		input.Body.Content = entry.Content
		out, err := h.create(auth.WithSubject(context.Background(), "a@x.com"), input)

		require.NoError(t, err)
		assert.Equal(t, "Blog created successfully", out.Body.Msg)
		svc.AssertExpectations(t)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "storage", err: errors.New("db down"), status: http.StatusInternalServerError},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(MockService)
				svc.On("Create", mock.Anything, "", mock.Anything).Return(blog.Blog{}, tt.err)
				h := NewHandler(svc, slog.Default(), nil, nil)

				_, err := h.create(context.Background(), &createInput{})
				assert.Equal(t, tt.status, statusOf(t, err))
			})
		}
	})
}

func TestHandler_list(t *testing.T) {
	t.Run("unreadable content is a server error", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return(nil, fmt.Errorf("%w: integrity", blog.ErrUnreadable))
		h := NewHandler(svc, slog.Default(), nil, nil)

		_, err := h.list(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.Contains(t, err.Error(), "stored data unreadable")
	})

	t.Run("route returns entries", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]blog.Entry{{Title: "t", Content: "secret"}}, nil)

		_, api := humatest.New(t)
		NewHandler(svc, slog.Default(), nil, nil).SetupRoutes(api)

		resp := api.Get("/blogs")
		require.Equal(t, http.StatusOK, resp.Code)

		var got []blog.Entry
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, []blog.Entry{{Title: "t", Content: "secret"}}, got)
	})

	t.Run("route rejects missing title", func(t *testing.T) {
		svc := new(MockService)
		_, api := humatest.New(t)
		NewHandler(svc, slog.Default(), nil, nil).SetupRoutes(api)

		resp := api.Post("/blog", map[string]any{"content": "x"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("route accepts empty title", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, "", blog.Entry{Title: "", Content: "x"}).Return(blog.Blog{}, nil)
		_, api := humatest.New(t)
		NewHandler(svc, slog.Default(), nil, nil).SetupRoutes(api)

		resp := api.Post("/blog", map[string]any{"title": "", "content": "x"})
		assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		svc.AssertExpectations(t)
	})
}
