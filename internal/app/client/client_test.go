package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/client/config"
	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/token"
)

// fakeServer повторяет контракт API: /token выдает "tok", /blogs требует его.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	var blogs []blog.Entry

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})
	mux.HandleFunc("POST /user", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if !strings.Contains(body["email"], "@") {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"status":422,"detail":"validation failed"}`))
			return
		}
		_, _ = w.Write([]byte(`{"msg":"User created successfully"}`))
	})
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "pw1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(token.Token{AccessToken: "tok", TokenType: "bearer", ExpiresAt: time.Now().Add(time.Minute)})
	})
	authorized := func(r *http.Request) bool {
		if r.Header.Get("Authorization") == "Bearer tok" {
			return true
		}
		email, pw, ok := r.BasicAuth()
		return ok && email == "a@x.com" && pw == "pw1"
	}
	mux.HandleFunc("POST /blog", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		var e blog.Entry
		_ = json.NewDecoder(r.Body).Decode(&e)
		blogs = append(blogs, e)
		_, _ = w.Write([]byte(`{"msg":"Blog created successfully"}`))
	})
	mux.HandleFunc("GET /blogs", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(blogs)
	})
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["a@x.com","a@x.com"]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, srv *httptest.Server) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(srv.URL, "http://"),
		ConfigDir:     dir,
		TokenPath:     filepath.Join(dir, "token"),
		AuthScheme:    config.SchemeBearer,
	}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestApp_BearerFlow(t *testing.T) {
	srv := fakeServer(t)
	app := newTestApp(t, srv)
	ctx := context.Background()

	require.NoError(t, app.CheckConnection(ctx))
	require.NoError(t, app.Register(ctx, "a@x.com", "pw1"))
	assert.False(t, app.IsAuthenticated())

	assert.ErrorIs(t, app.CreateBlog(ctx, "t", "secret"), ErrUnauthorized)

	tok, err := app.Login(ctx, "a@x.com", "pw1", true)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.True(t, app.IsAuthenticated())

	require.NoError(t, app.CreateBlog(ctx, "t", "secret"))
	entries, err := app.ListBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []blog.Entry{{Title: "t", Content: "secret"}}, entries)

	saved, err := os.ReadFile(app.Config().TokenPath)
	require.NoError(t, err)
	assert.Equal(t, "tok", string(saved))

	// новый процесс подхватывает сохраненный токен
	again := New(app.Config(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.True(t, again.IsAuthenticated())
	_, err = again.ListBlogs(ctx)
	assert.NoError(t, err)

	require.NoError(t, again.ClearToken())
	_, err = again.GetToken()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestApp_BasicFlow(t *testing.T) {
	srv := fakeServer(t)
	app := newTestApp(t, srv)
	ctx := context.Background()

	app.UseBasic("a@x.com", "pw1")
	require.NoError(t, app.CreateBlog(ctx, "t", "c"))

	app.UseBasic("a@x.com", "nope")
	assert.ErrorIs(t, app.CreateBlog(ctx, "t", "c"), ErrUnauthorized)
}

func TestApp_Errors(t *testing.T) {
	srv := fakeServer(t)
	app := newTestApp(t, srv)
	ctx := context.Background()

	err := app.Register(ctx, "not-an-email", "pw1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = app.Login(ctx, "a@x.com", "wrong", false)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NoFileExists(t, app.Config().TokenPath)
}

func TestApp_ListUsers(t *testing.T) {
	srv := fakeServer(t)
	app := newTestApp(t, srv)

	emails, err := app.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "a@x.com"}, emails)
}
