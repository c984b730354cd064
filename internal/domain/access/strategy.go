package access

import (
	"context"

	"blogkeeper/internal/domain/token"
	"blogkeeper/internal/domain/user"
)

type Outcome int

const (
	// Indeterminate means the scheme was not presented at all.
	Indeterminate Outcome = iota
	Deny
	Admit
)

func (o Outcome) String() string {
	switch o {
	case Admit:
		return "admit"
	case Deny:
		return "deny"
	default:
		return "indeterminate"
	}
}

type Result struct {
	Outcome Outcome
	Subject string
	// Err is the internal reason for a Deny. It never leaves the gate.
	Err error
}

type Strategy interface {
	Name() string
	Authenticate(ctx context.Context, creds Credentials) Result
}

// Authenticator is the part of user.Servicer the strategies need.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (user.User, error)
	Exists(ctx context.Context, email string) (bool, error)
}

// Open admits every request.
type Open struct{}

func (Open) Name() string { return "open" }

func (Open) Authenticate(_ context.Context, _ Credentials) Result {
	return Result{Outcome: Admit}
}

// Basic checks an email/password pair against the user store. The email is
// matched verbatim.
type Basic struct {
	users Authenticator
}

func NewBasic(users Authenticator) *Basic {
	return &Basic{users: users}
}

func (b *Basic) Name() string { return "basic" }

func (b *Basic) Authenticate(ctx context.Context, creds Credentials) Result {
	if creds.Basic == nil {
		return Result{Outcome: Indeterminate}
	}

	u, err := b.users.Authenticate(ctx, creds.Basic.Username, creds.Basic.Password)
	if err != nil {
		return Result{Outcome: Deny, Err: err}
	}
	return Result{Outcome: Admit, Subject: u.Email}
}

// Bearer verifies a signed token and requires its subject to still be a
// registered user.
type Bearer struct {
	tokens token.Servicer
	users  Authenticator
}

func NewBearer(tokens token.Servicer, users Authenticator) *Bearer {
	return &Bearer{tokens: tokens, users: users}
}

func (b *Bearer) Name() string { return "bearer" }

func (b *Bearer) Authenticate(ctx context.Context, creds Credentials) Result {
	if creds.Bearer == "" {
		return Result{Outcome: Indeterminate}
	}

	subject, err := b.tokens.Verify(creds.Bearer)
	if err != nil {
		return Result{Outcome: Deny, Err: err}
	}

	ok, err := b.users.Exists(ctx, subject)
	if err != nil {
		return Result{Outcome: Deny, Err: err}
	}
	if !ok {
		return Result{Outcome: Deny, Err: user.ErrNotFound}
	}
	return Result{Outcome: Admit, Subject: subject}
}
