package user

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/domain/token"
	"blogkeeper/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	tokens     token.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, tokens token.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		tokens:     tokens,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.tokenOp(), h.token)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*messageOutput, error) {
	_, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("register user", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not register user")
	}

	return &messageOutput{
		Body: MessageResponse{Msg: "User created successfully"},
	}, nil
}

func (h *Handler) token(ctx context.Context, input *tokenInput) (*tokenOutput, error) {
	form, err := parsePasswordForm(input.ContentType, input.RawBody)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	u, err := h.service.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		h.log.Debug("token request rejected", slog.Any("error", err))
		return nil, huma.Error401Unauthorized("Incorrect username or password")
	}

	tok, err := h.tokens.Issue(u.Email)
	if err != nil {
		h.log.Error("issue token", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not issue token")
	}

	return &tokenOutput{Body: tok}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listUsersOutput, error) {
	emails, err := h.service.ListEmails(ctx)
	if err != nil {
		h.log.Error("list users", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("could not list users")
	}

	return &listUsersOutput{Body: emails}, nil
}

func parsePasswordForm(contentType string, body []byte) (passwordForm, error) {
	var form passwordForm

	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/json":
		if err := json.Unmarshal(body, &form); err != nil {
			return form, errors.New("body is not valid JSON")
		}
	default:
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return form, errors.New("body is not a valid form")
		}
		form.Username = values.Get("username")
		form.Password = values.Get("password")
	}

	if form.Username == "" || form.Password == "" {
		return form, errors.New("username and password are required")
	}
	return form, nil
}
