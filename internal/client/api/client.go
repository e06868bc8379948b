package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/spawnsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает запросы к серверу синхронизации
type ClientAPI interface {
	// RequestToken получает токен доступа для узла
	RequestToken(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error)

	// PushSnapshot публикует таблицу спавна (только роль host)
	PushSnapshot(ctx context.Context, accessToken string, req api.PushSnapshotRequest) (*api.SnapshotResponse, error)

	// FetchLatest получает последний снимок карты вместе с таблицей
	FetchLatest(ctx context.Context, accessToken, mapName string) (*api.SnapshotResponse, error)

	// FetchSnapshot получает снимок из архива по ID
	FetchSnapshot(ctx context.Context, accessToken, id string) (*api.SnapshotResponse, error)

	// History возвращает историю снимков карты без тел таблиц
	History(ctx context.Context, accessToken, mapName string, limit int) (*api.SnapshotListResponse, error)

	// ListMaps возвращает карты, для которых есть снимки
	ListMaps(ctx context.Context, accessToken string) (*api.MapListResponse, error)
}

// StatusError ответ сервера с кодом вне диапазона 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus сообщает, что err вызвана ответом сервера с кодом code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Токен переносим только в пределах того же хоста
				if len(via) > 0 && req.URL.Host == via[0].URL.Host {
					if auth := via[0].Header.Get("Authorization"); auth != "" {
						req.Header.Set("Authorization", auth)
					}
				}
				return nil
			},
		},
	}
}

// RequestToken получает токен доступа для узла
func (c *Client) RequestToken(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/token", "", req, &resp); err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return &resp, nil
}

// PushSnapshot публикует таблицу спавна
func (c *Client) PushSnapshot(ctx context.Context, accessToken string, req api.PushSnapshotRequest) (*api.SnapshotResponse, error) {
	var resp api.SnapshotResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/snapshots", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("push snapshot failed: %w", err)
	}
	return &resp, nil
}

// FetchLatest получает последний снимок карты
func (c *Client) FetchLatest(ctx context.Context, accessToken, mapName string) (*api.SnapshotResponse, error) {
	var resp api.SnapshotResponse
	path := "/api/v1/snapshots/" + url.PathEscape(mapName)
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch snapshot failed: %w", err)
	}
	return &resp, nil
}

// FetchSnapshot получает снимок из архива по ID
func (c *Client) FetchSnapshot(ctx context.Context, accessToken, id string) (*api.SnapshotResponse, error) {
	var resp api.SnapshotResponse
	path := "/api/v1/archive/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch archived snapshot failed: %w", err)
	}
	return &resp, nil
}

// History возвращает историю снимков карты; limit <= 0 оставляет значение сервера
func (c *Client) History(ctx context.Context, accessToken, mapName string, limit int) (*api.SnapshotListResponse, error) {
	var resp api.SnapshotListResponse
	path := "/api/v1/snapshots/" + url.PathEscape(mapName) + "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("history request failed: %w", err)
	}
	return &resp, nil
}

// ListMaps возвращает карты, для которых есть снимки
func (c *Client) ListMaps(ctx context.Context, accessToken string) (*api.MapListResponse, error) {
	var resp api.MapListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/maps", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list maps failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
		} else {
			statusErr.Message = strings.TrimSpace(string(respBody))
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
