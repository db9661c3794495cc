// Package apiclient реализует HTTP клиент к бэкенду сокращателя ссылок.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"go.uber.org/zap"
)

// Таймаут на любой запрос к бэкенду: зависший запрос не должен
// бесконечно держать отправку формы в полёте.
const requestTimeout = 15 * time.Second

// Максимальный размер читаемого тела ответа.
const maxBodySize = 1 << 20

// Client интерфейс к API аутентификации и коллекции ссылок.
type Client interface {
	// Login отправляет form-encoded POST /user/login и возвращает токен.
	Login(ctx context.Context, creds models.Credentials) (string, error)
	// CreateAccount отправляет JSON POST /user/create и возвращает токен.
	CreateAccount(ctx context.Context, req models.SignupRequest) (string, error)
	// FetchURLs возвращает коллекцию ссылок пользователя в порядке,
	// заданном бэкендом.
	FetchURLs(ctx context.Context, token string) ([]models.ShortURLRecord, error)
	// CreateURL создаёт новую короткую ссылку.
	CreateURL(ctx context.Context, token string, input models.CreateURLInput) error
	// DeleteURL удаляет ссылку по её back half.
	DeleteURL(ctx context.Context, token, backHalf string) error
}

// client реализация Client поверх net/http.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New создаёт клиент к API по базовому адресу.
func New(baseURL string, logger *zap.Logger) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

func (c *client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.doToken(req, "login")
}

func (c *client) CreateAccount(ctx context.Context, signup models.SignupRequest) (string, error) {
	body, err := json.Marshal(signup)
	if err != nil {
		return "", fmt.Errorf("encode signup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/create", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build signup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doToken(req, "signup")
}

func (c *client) FetchURLs(ctx context.Context, token string) ([]models.ShortURLRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/urls", nil)
	if err != nil {
		return nil, fmt.Errorf("build urls request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch urls: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.decodeError(resp)
	}

	var collection models.ShortURLCollection
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&collection); err != nil {
		return nil, fmt.Errorf("parse urls response: %w", err)
	}

	return collection.ShortURLs, nil
}

func (c *client) CreateURL(ctx context.Context, token string, input models.CreateURLInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode create url request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/urls/create", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build create url request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.doStatus(req)
}

func (c *client) DeleteURL(ctx context.Context, token, backHalf string) error {
	endpoint := c.baseURL + "/api/v1/urls/delete?url_id=" + url.QueryEscape(backHalf)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete url request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.doStatus(req)
}

// doToken выполняет запрос аутентификации и извлекает токен из ответа.
func (c *client) doToken(req *http.Request, op string) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.decodeError(resp)
	}

	var tr models.TokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&tr); err != nil {
		return "", fmt.Errorf("parse %s response: %w", op, err)
	}
	if tr.Token == "" {
		return "", fmt.Errorf("no token in %s response", op)
	}

	return tr.Token, nil
}

// doStatus выполняет запрос, где важен только статус ответа.
func (c *client) doStatus(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	return nil
}

// decodeError разбирает конверт ошибки {detail, code}.
// Нечитаемое тело превращается в ошибку парсинга, а не в APIError.
func (c *client) decodeError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read error response (status %d): %w", resp.StatusCode, err)
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Errorf("parse error response (status %d): %w", resp.StatusCode, err)
	}
	apiErr.StatusCode = resp.StatusCode

	c.logger.Debug("API error",
		zap.Int("status", resp.StatusCode),
		zap.String("code", apiErr.Code),
		zap.String("detail", apiErr.Detail),
	)

	return &apiErr
}
