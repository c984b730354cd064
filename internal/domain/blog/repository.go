package blog

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, b Blog) error
	List(ctx context.Context) ([]Blog, error)
}
