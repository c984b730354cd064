package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/domain/access"
)

const realm = "blogkeeper"

type Auth struct {
	gate *access.Gate
	log  *slog.Logger
}

func New(gate *access.Gate, log *slog.Logger) *Auth {
	return &Auth{
		gate: gate,
		log:  log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const SubjectKey contextKey = "subject"

// Middleware пропускает запрос дальше только если шлюз доступа его допустил.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		creds := access.ParseAuthorization(ctx.Header("Authorization"))

		subject, err := a.gate.Admit(ctx.Context(), creds)
		if err != nil {
			a.log.Debug("request rejected",
				slog.String("path", ctx.URL().Path),
				slog.Bool("credentials_present", !creds.Empty()),
			)
			a.reject(ctx)
			return
		}

		newCtx := WithSubject(ctx.Context(), subject)
		next(huma.WithContext(ctx, newCtx))
	}
}

// reject writes the same response for every failure cause.
func (a *Auth) reject(ctx huma.Context) {
	if challenge := a.challenge(); challenge != "" {
		ctx.SetHeader("WWW-Authenticate", challenge)
	}
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
	if err != nil {
		a.log.Error("json encode", slog.Any("error", err))
	}
}

func (a *Auth) challenge() string {
	var parts []string
	for _, scheme := range a.gate.Mode().Schemes() {
		switch scheme {
		case "bearer":
			parts = append(parts, "Bearer")
		case "basic":
			parts = append(parts, `Basic realm="`+realm+`"`)
		}
	}
	return strings.Join(parts, ", ")
}

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// GetSubject returns the admitted subject; it is empty when the gate runs
// without authentication.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}
