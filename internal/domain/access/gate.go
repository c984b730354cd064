package access

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/domain/token"
)

type Mode string

const (
	ModeNone   Mode = "none"
	ModeBasic  Mode = "basic"
	ModeEither Mode = "either"
	ModeBearer Mode = "bearer"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNone, ModeBasic, ModeEither, ModeBearer:
		return m, nil
	default:
		return "", fmt.Errorf("unknown access mode %q", s)
	}
}

// Schemes lists the HTTP auth schemes a mode accepts.
func (m Mode) Schemes() []string {
	switch m {
	case ModeBasic:
		return []string{"basic"}
	case ModeEither:
		return []string{"bearer", "basic"}
	case ModeBearer:
		return []string{"bearer"}
	default:
		return nil
	}
}

// Gate admits a request when any of its strategies admits it. Every strategy
// is evaluated, in order, regardless of earlier results.
type Gate struct {
	mode       Mode
	strategies []Strategy
	log        *slog.Logger
}

func NewGate(mode Mode, strategies []Strategy, log *slog.Logger) *Gate {
	return &Gate{
		mode:       mode,
		strategies: strategies,
		log:        log.With(slog.String("component", "access_gate")),
	}
}

// ForMode builds the strategy list for a mode.
func ForMode(mode Mode, users Authenticator, tokens token.Servicer, log *slog.Logger) (*Gate, error) {
	var strategies []Strategy
	switch mode {
	case ModeNone:
		strategies = []Strategy{Open{}}
	case ModeBasic:
		strategies = []Strategy{NewBasic(users)}
	case ModeEither:
		strategies = []Strategy{NewBearer(tokens, users), NewBasic(users)}
	case ModeBearer:
		strategies = []Strategy{NewBearer(tokens, users)}
	default:
		return nil, fmt.Errorf("unknown access mode %q", mode)
	}
	return NewGate(mode, strategies, log), nil
}

func (g *Gate) Mode() Mode {
	return g.mode
}

// Admit returns the subject of the first admitting strategy. Any other
// outcome is reported as ErrUnauthorized without detail.
func (g *Gate) Admit(ctx context.Context, creds Credentials) (string, error) {
	admitted := false
	subject := ""

	for _, s := range g.strategies {
		res := s.Authenticate(ctx, creds)
		if res.Outcome == Deny {
			g.log.Debug("strategy denied", "strategy", s.Name(), "error", res.Err)
		}
		if res.Outcome == Admit && !admitted {
			admitted = true
			subject = res.Subject
		}
	}

	if !admitted {
		return "", ErrUnauthorized
	}
	return subject, nil
}
