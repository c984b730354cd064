// Package debug отдает хранилище без преобразований. Регистрируется только
// при EXPOSE_RAW=true.
package debug

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/user"
)

type Handler struct {
	users      user.Servicer
	blogs      blog.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(users user.Servicer, blogs blog.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		users:      users,
		blogs:      blogs,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.rawUsersOp(), h.rawUsers)
	huma.Register(api, h.rawBlogsOp(), h.rawBlogs)
}

func (h *Handler) rawUsers(ctx context.Context, _ *struct{}) (*rawUsersOutput, error) {
	users, err := h.users.ListRaw(ctx)
	if err != nil {
		h.log.Error("list raw users", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not list users")
	}
	if users == nil {
		users = []user.User{}
	}
	return &rawUsersOutput{Body: users}, nil
}

func (h *Handler) rawBlogs(ctx context.Context, _ *struct{}) (*rawBlogsOutput, error) {
	blogs, err := h.blogs.ListRaw(ctx)
	if err != nil {
		h.log.Error("list raw blogs", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not list blogs")
	}
	if blogs == nil {
		blogs = []blog.Blog{}
	}
	return &rawBlogsOutput{Body: blogs}, nil
}
