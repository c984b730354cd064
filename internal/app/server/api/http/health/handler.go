package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger reports whether storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Info describes the running configuration in the health response.
type Info struct {
	Storage    string
	AccessMode string
}

type Handler struct {
	log        *slog.Logger
	pinger     Pinger
	info       Info
	middleware huma.Middlewares
}

// NewHandler принимает nil pinger, если проверять нечего.
func NewHandler(log *slog.Logger, pinger Pinger, info Info, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		pinger:     pinger,
		info:       info,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.log.Error("storage ping failed", slog.Any("error", err))
			return nil, huma.Error503ServiceUnavailable("UNAVAILABLE")
		}
	}

	return &Output{
		Body: Response{
			Status:     "OK",
			Storage:    h.info.Storage,
			AccessMode: h.info.AccessMode,
		},
	}, nil
}
