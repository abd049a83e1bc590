package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// Client is a thin HTTP client for the Taskify REST API. It handles
// Bearer token authentication, JSON marshaling, and automatic retry
// with exponential backoff on HTTP 429.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int

	// mu guards token: the session swaps it on login and logout while
	// fetch goroutines and the notification poller build requests.
	mu    sync.RWMutex
	token string
}

// NewClient creates a new Taskify API client. The baseURL should be the
// root URL of the server (e.g., https://taskify.example.com); the /api
// prefix is added per request. The token may be empty for the auth
// endpoints and is set via SetToken after login.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: 3,
	}
}

// SetToken sets the Bearer token sent with subsequent requests. Safe to
// call while requests are in flight.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login authenticates with email and password and returns the issued token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Token, error) {
	var token Token
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates a new account and returns the issued token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Token, error) {
	var token Token
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTasks retrieves tasks matching the filter. Only filter fields with
// non-empty values become query parameters; the server owns ordering.
func (c *Client) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	query := url.Values{}
	if filter.Status != nil && *filter.Status != "" {
		query.Set("status", *filter.Status)
	}
	if filter.Priority != nil && *filter.Priority != "" {
		query.Set("priority", *filter.Priority)
	}
	if filter.CategoryID != nil && *filter.CategoryID != "" {
		query.Set("category_id", *filter.CategoryID)
	}

	path := "/api/tasks"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the server's copy.
func (c *Client) CreateTask(ctx context.Context, input TaskCreate) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the updated task.
func (c *Client) UpdateTask(ctx context.Context, id string, partial TaskUpdate) (*model.Task, error) {
	var task model.Task
	path := "/api/tasks/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, partial, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask permanently removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	path := "/api/tasks/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListCategories retrieves all categories for the current user.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category and returns the server's copy.
func (c *Client) CreateCategory(ctx context.Context, input CategoryCreate) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Tasks referencing it keep their
// now-dangling category_id; the server permits this.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	path := "/api/categories/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetAnalytics retrieves the aggregate analytics snapshot.
func (c *Client) GetAnalytics(ctx context.Context) (*model.AnalyticsSnapshot, error) {
	var snapshot model.AnalyticsSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/analytics", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListNotifications retrieves the notification list, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification as read. The server
// treats re-marking an already-read notification as a success.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id) + "/read"
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do is the core HTTP method that builds the request, handles auth,
// rate limiting with exponential backoff, and JSON (de)serialization.
func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body interface{},
	result interface{},
) error {
	requestURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		// Rebuild the body reader on retries since it was consumed.
		if attempt > 0 && body != nil {
			data, _ := json.Marshal(body)
			bodyReader = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(
			ctx, method, requestURL, bodyReader,
		)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}

		if token := c.currentToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", uuid.NewString())
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("executing request %s %s: %w", method, path, err)
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("reading response body: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			waitDuration := retryAfterDuration(resp, attempt)
			lastErr = fmt.Errorf(
				"rate limited (429) on %s %s", method, path,
			)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(waitDuration):
				continue
			}
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return &AuthError{Message: errorDetail(respBody)}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{
				StatusCode: resp.StatusCode,
				Method:     method,
				Path:       path,
				Message:    errorDetail(respBody),
			}
		}

		// No content to parse (e.g. 204 or plain-message responses).
		if result == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}

		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf(
				"unmarshaling response from %s %s: %w",
				method, path, err,
			)
		}

		return nil
	}

	return fmt.Errorf(
		"max retries (%d) exceeded: %w", c.maxRetries, lastErr,
	)
}

// errorDetail extracts the server's error detail from a response body,
// falling back to the raw body when it is not the standard shape.
func errorDetail(respBody []byte) string {
	var parsed errorResponse
	if json.Unmarshal(respBody, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return strings.TrimSpace(string(respBody))
}

// retryAfterDuration reads the Retry-After header and computes a wait
// duration. Falls back to exponential backoff if the header is missing.
func retryAfterDuration(resp *http.Response, attempt int) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// Exponential backoff: 1s, 2s, 4s, ...
	backoff := time.Duration(1<<uint(attempt)) * time.Second
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	return backoff
}
