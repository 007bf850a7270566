package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/progressboard/pkg/api"
)

// DefaultTimeout is the HTTP timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// TokenSource provides the bearer credential and tears it down when the
// backend rejects it. auth.TokenStore implements it.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с GraphQL backend
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	graphqlURL string
	authURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создает новый API клиент
func NewClient(graphqlURL, authURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		graphqlURL: graphqlURL,
		authURL:    authURL,
		tokens:     tokens,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Execute sends one GraphQL request and decodes its data into out (which may
// be nil). Failures are ErrNoCredential, *HTTPError, *GraphQLError or a
// wrapped transport error. When the failure is credential-related the stored
// session is cleared before returning.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	err := c.execute(ctx, query, variables, out)
	if err != nil && IsCredentialError(err) {
		slog.Warn("credential rejected, clearing session", "error", err)
		// Очистка не должна зависеть от отмены контекста запроса
		if clearErr := c.tokens.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			slog.Error("failed to clear session", "error", clearErr)
		}
	}
	return err
}

func (c *Client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credential: %w", err)
	}
	if token == "" {
		return ErrNoCredential
	}

	payload := api.GraphQLRequest{Query: query, Variables: variables}
	body, status, err := c.doRequest(ctx, c.graphqlURL, payload, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return &HTTPError{StatusCode: status, Body: string(body)}
	}

	var resp api.GraphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		slog.Error("graphql errors", "errors", messages)
		return &GraphQLError{Message: messages[0], Errors: messages}
	}

	if out == nil || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}

	return nil
}

// SignIn exchanges identifier and password for a credential using HTTP Basic
// auth. The decoded body is returned as-is (see api.DecodeSignIn); callers
// extract the token. Any non-2xx answer is ErrInvalidCredentials.
func (c *Client) SignIn(ctx context.Context, identifier, password string) (any, error) {
	body, status, err := c.doRequest(ctx, c.authURL, nil, func(req *http.Request) {
		req.SetBasicAuth(identifier, password)
	})
	if err != nil {
		return nil, fmt.Errorf("sign in request failed: %w", err)
	}

	if status < 200 || status >= 300 {
		slog.Debug("sign in rejected", "status", status)
		return nil, ErrInvalidCredentials
	}

	return api.DecodeSignIn(body), nil
}

// doRequest выполняет POST запрос и возвращает тело и статус ответа
func (c *Client) doRequest(ctx context.Context, url string, payload any, prepare func(*http.Request)) ([]byte, int, error) {
	var bodyReader io.Reader = http.NoBody
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	prepare(req)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("request done",
		"request_id", requestID,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	return respBody, resp.StatusCode, nil
}
