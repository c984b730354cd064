package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	gosync "sync"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/client/config"
	"blogkeeper/internal/domain/blog"
)

var ErrNoToken = errors.New("токен не найден. Выполните вход: blogkeeper auth login")

type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	authenticated bool
	mu            gosync.RWMutex
}

func New(cfg *config.Config, log *slog.Logger) *App {
	httpCl := NewHTTPClient(cfg, log)

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
	}

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("Токен загружен из файла")
	}

	return app
}

// Config возвращает конфигурацию клиента
func (a *App) Config() *config.Config {
	return a.config
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated проверяет, есть ли у клиента учетные данные
func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return strings.TrimSpace(string(tokenBytes)), nil
}

// SaveToken сохраняет токен аутентификации
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)
	return nil
}

// ClearToken удаляет токен
func (a *App) ClearToken() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.authenticated = false
	a.httpClient.SetToken("")

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	return nil
}

// UseBasic подписывает последующие запросы Basic-учеткой; токен не используется.
func (a *App) UseBasic(email, password string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.httpClient.SetBasic(email, password)
	a.authenticated = true
}

// Register регистрирует нового пользователя
func (a *App) Register(ctx context.Context, email, password string) error {
	if err := a.httpClient.Register(ctx, email, password); err != nil {
		return err
	}

	a.log.Info("Пользователь успешно зарегистрирован", "email", email)
	return nil
}

// Login получает токен и сохраняет его, если remember=true
func (a *App) Login(ctx context.Context, email, password string, remember bool) (string, error) {
	tok, err := a.httpClient.Token(ctx, email, password)
	if err != nil {
		return "", err
	}

	if remember {
		if err := a.SaveToken(tok.AccessToken); err != nil {
			return "", err
		}
	} else {
		a.httpClient.SetToken(tok.AccessToken)
	}

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	a.log.Info("Вход выполнен успешно", "email", email, "expires_at", tok.ExpiresAt)
	return tok.AccessToken, nil
}

func (a *App) CreateBlog(ctx context.Context, title, content string) error {
	return a.httpClient.CreateBlog(ctx, blog.Entry{Title: title, Content: content})
}

func (a *App) ListBlogs(ctx context.Context) ([]blog.Entry, error) {
	return a.httpClient.ListBlogs(ctx)
}

func (a *App) ListUsers(ctx context.Context) ([]string, error) {
	return a.httpClient.ListUsers(ctx)
}
