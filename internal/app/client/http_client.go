package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/client/config"
	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/token"
	"blogkeeper/internal/domain/user"
)

// ErrUnauthorized возвращается на любой ответ 401.
var ErrUnauthorized = errors.New("требуется аутентификация")

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	basic     *basicAuth
	userAgent string
}

type basicAuth struct {
	email    string
	password string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "Blogkeeper-Client/1.0",
	}
}

// SetToken устанавливает bearer-токен
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// SetBasic включает Basic-аутентификацию вместо токена
func (h *httpClient) SetBasic(email, password string) {
	h.basic = &basicAuth{email: email, password: password}
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, email, password string) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user", user.BaseRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// Token обменивает email и пароль на bearer-токен через форму /token
func (h *httpClient) Token(ctx context.Context, email, password string) (token.Token, error) {
	form := url.Values{"username": {email}, "password": {password}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return token.Token{}, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return token.Token{}, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	var tok token.Token
	if err := h.parseResponse(resp, &tok); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (h *httpClient) CreateBlog(ctx context.Context, entry blog.Entry) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/blog", entry)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListBlogs(ctx context.Context) ([]blog.Entry, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/blogs", nil)
	if err != nil {
		return nil, err
	}

	var entries []blog.Entry
	if err := h.parseResponse(resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpClient) ListUsers(ctx context.Context) ([]string, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}

	var emails []string
	if err := h.parseResponse(resp, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case h.basic != nil:
		req.SetBasicAuth(h.basic.email, h.basic.password)
	case h.token != "":
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		// huma отдает application/problem+json с detail
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
