package blog

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server/api/http/middleware/auth"
	"blogkeeper/internal/domain/blog"
)

type Handler struct {
	service    blog.Servicer
	log        *slog.Logger
	security   []map[string][]string
	middleware huma.Middlewares
}

// NewHandler принимает схемы безопасности для OpenAPI документа; nil для
// режима без аутентификации.
func NewHandler(service blog.Servicer, log *slog.Logger, security []map[string][]string, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		security:   security,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	author, _ := auth.GetSubject(ctx)

	_, err := h.service.Create(ctx, author, blog.Entry{
		Title:   input.Body.Title,
		Content: input.Body.Content,
	})
	if err != nil {
		h.log.Error("create blog", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not create blog")
	}

	return &createOutput{
		Body: CreatedResponse{Msg: "Blog created successfully"},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	entries, err := h.service.List(ctx)
	if err != nil {
		if errors.Is(err, blog.ErrUnreadable) {
			return nil, huma.Error500InternalServerError("stored data unreadable")
		}
		h.log.Error("list blogs", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not list blogs")
	}

	return &listOutput{Body: entries}, nil
}
