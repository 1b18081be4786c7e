package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	pkgLog "task-management/pkg/log"
)

// Client is the HTTP wrapper for the task REST API rooted at {base}/tasks.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new task API client for the given base endpoint,
// e.g. "http://localhost:8081/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// WithHTTPClient overrides the underlying *http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Endpoint returns the task collection URL, {base}/tasks.
func (c *Client) Endpoint() string {
	return c.baseURL + "/tasks"
}

func (c *Client) taskURL(id int64) string {
	return fmt.Sprintf("%s/%d", c.Endpoint(), id)
}

// ListTasks fetches every task via GET {base}/tasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, c.Endpoint(), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// GetTask fetches a single task via GET {base}/tasks/{id}.
func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, c.taskURL(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task via POST {base}/tasks. The ID of req is not sent.
func (c *Client) CreateTask(ctx context.Context, req Task) (*Task, error) {
	req.ID = 0

	var task Task
	if err := c.do(ctx, http.MethodPost, c.Endpoint(), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces a task via PUT {base}/tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, id int64, req Task) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, c.taskURL(id), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task via DELETE {base}/tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, nil)
}

// do performs one round trip. Every failure that leaves this method is a
// *Error except a request body that cannot be marshaled.
func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, url, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return newUnreachableError(c.Endpoint(), err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(HeaderRequestID, requestID(ctx))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return newUnreachableError(c.Endpoint(), err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newServerError(c.Endpoint(), resp.StatusCode, raw)
	}
	if readErr != nil {
		return newUnreachableError(c.Endpoint(), readErr)
	}
	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Kind:       KindServer,
			Endpoint:   c.Endpoint(),
			StatusCode: resp.StatusCode,
			Payload:    fmt.Sprintf("invalid response body: %v", err),
			Err:        err,
		}
	}
	return nil
}

// HeaderRequestID correlates client calls with server logs.
const HeaderRequestID = "X-Request-ID"

func requestID(ctx context.Context) string {
	if id := pkgLog.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

// ---- Request/Response types scoped to this package ----

// Task is the wire representation of a task.
type Task struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}
