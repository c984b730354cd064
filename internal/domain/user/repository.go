package user

import (
	"context"
)

// Repository keeps users in insertion order. Emails are not unique:
// FindByEmail returns the first record registered under the address.
type Repository interface {
	Create(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}
