// Package memory keeps users and blogs in process memory. Everything is lost
// on restart.
package memory

import (
	"context"
	"sync"

	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/user"
)

// UserRepository is an append-only user list guarded by a single lock.
type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, u)
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type BlogRepository struct {
	mu    sync.RWMutex
	blogs []blog.Blog
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

func (r *BlogRepository) Create(_ context.Context, b blog.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blogs = append(r.blogs, b)
	return nil
}

func (r *BlogRepository) List(_ context.Context) ([]blog.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]blog.Blog, len(r.blogs))
	copy(out, r.blogs)
	return out, nil
}
