package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/user"
)

func TestUserRepository_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Create(ctx, user.User{Email: "a@x.com", PasswordHash: "first"}))
	require.NoError(t, repo.Create(ctx, user.User{Email: "b@y.com", PasswordHash: "other"}))
	require.NoError(t, repo.Create(ctx, user.User{Email: "a@x.com", PasswordHash: "second"}))

	u, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "first", u.PasswordHash)

	_, err = repo.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, user.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"first", "other", "second"}, []string{all[0].PasswordHash, all[1].PasswordHash, all[2].PasswordHash})
}

func TestUserRepository_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.Create(ctx, user.User{Email: "a@x.com"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	all[0].Email = "mutated@x.com"

	u, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestBlogRepository_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, blog.Blog{Title: fmt.Sprintf("t%d", i)}))
	}

	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, b := range all {
		assert.Equal(t, fmt.Sprintf("t%d", i), b.Title)
	}
}

func TestRepositories_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()
	blogs := NewBlogRepository()

	require.NoError(t, users.Create(ctx, user.User{Email: "prior@x.com"}))
	require.NoError(t, blogs.Create(ctx, blog.Blog{Title: "prior"}))

	const writers = 64
	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = users.Create(ctx, user.User{Email: fmt.Sprintf("u%d@x.com", i)})
			_, _ = users.FindByEmail(ctx, "prior@x.com")
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = blogs.Create(ctx, blog.Blog{Title: fmt.Sprintf("b%d", i)})
			_, _ = blogs.List(ctx)
		}(i)
	}
	wg.Wait()

	allUsers, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allUsers, writers+1)

	allBlogs, err := blogs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allBlogs, writers+1)
	assert.Equal(t, "prior", allBlogs[0].Title)
}
