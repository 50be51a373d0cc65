// Package taskflow implements the service.Service interface against the
// TaskFlow REST API.
package taskflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"taskflow/internal/config"
	"taskflow/internal/service"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second
)

// Client implements service.Service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// TokenProvider supplies the current bearer token, or "" when logged out.
type TokenProvider interface {
	Token() string
}

// New creates a TaskFlow API client. When the provider holds a token, the
// HTTP client injects it as an Authorization: Bearer header on every request;
// without one the requests go out bare and the server rejects them.
func New(ctx context.Context, cfg *config.Config, tokens TokenProvider) (*Client, error) {
	httpClient := &http.Client{Timeout: APITimeout}
	if tok := tokens.Token(); tok != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, src)
		httpClient.Timeout = APITimeout
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "taskflow: ", log.LstdFlags)
	}

	return &Client{
		baseURL:    cfg.APIURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log.New(io.Discard, "", 0),
	}
}

// envelope is the wrapper the API puts around every response body.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// authPayload is the data field of login/register responses.
type authPayload struct {
	Token string       `json:"token"`
	User  service.User `json:"user"`
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (string, service.User, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/users/login", body)
	if err != nil {
		return "", service.User{}, err
	}

	var auth authPayload
	if err := json.Unmarshal(env.Data, &auth); err != nil || auth.Token == "" {
		return "", service.User{}, fmt.Errorf("login response missing token")
	}
	return auth.Token, auth.User, nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, email, password, name string) (string, service.User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	env, err := c.do(ctx, http.MethodPost, "/users/register", body)
	if err != nil {
		return "", service.User{}, err
	}

	var auth authPayload
	if err := json.Unmarshal(env.Data, &auth); err != nil || auth.Token == "" {
		return "", service.User{}, fmt.Errorf("register response missing token")
	}
	return auth.Token, auth.User, nil
}

// ListTasks implements service.Service. A response without success:true or
// whose data is not a list decodes to an empty slice rather than an error;
// the API has been observed to return odd shapes on empty accounts.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}

	if !env.Success {
		c.logger.Printf("list: unsuccessful envelope: %s", env.Message)
		return []service.Task{}, nil
	}
	var tasks []service.Task
	if err := json.Unmarshal(env.Data, &tasks); err != nil {
		c.logger.Printf("list: data is not a task list: %v", err)
		return []service.Task{}, nil
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	if strings.TrimSpace(title) == "" {
		return service.Task{}, fmt.Errorf("%w: title required", service.ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return service.Task{}, fmt.Errorf("%w: description required", service.ErrValidation)
	}

	body := map[string]string{"title": title, "description": description}
	env, err := c.do(ctx, http.MethodPost, "/tasks", body)
	if err != nil {
		return service.Task{}, err
	}

	var task service.Task
	if err := json.Unmarshal(env.Data, &task); err != nil {
		return service.Task{}, fmt.Errorf("create response: %w", err)
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	if id == "" {
		return service.Task{}, fmt.Errorf("%w: task id required", service.ErrValidation)
	}

	env, err := c.do(ctx, http.MethodPut, "/tasks/"+id, patch)
	if err != nil {
		return service.Task{}, err
	}

	var task service.Task
	if err := json.Unmarshal(env.Data, &task); err != nil {
		return service.Task{}, fmt.Errorf("update response: %w", err)
	}
	return task, nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: task id required", service.ErrValidation)
	}
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil)
	return err
}

// do issues one request and decodes the response envelope.
// Non-2xx statuses and network failures come back as errors; no retries.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Printf("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}

	var env envelope
	// Decode errors on the envelope itself are tolerated; status handling
	// below still gets the message when one was parseable.
	_ = json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, env.Message)
	}
	return &env, nil
}

// statusError maps HTTP statuses to user-facing errors.
func statusError(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		if message != "" {
			return fmt.Errorf("%s", message)
		}
		return fmt.Errorf("token expired or invalid (run: taskflow login)")
	case http.StatusNotFound:
		return fmt.Errorf("not found")
	}
	if message != "" {
		return fmt.Errorf("%s (HTTP %d)", message, status)
	}
	return fmt.Errorf("unexpected status: HTTP %d", status)
}

// wrapError wraps transport errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	return err
}
