// Package client is the HTTP client for the taskboard API, used by the
// terminal board. It mirrors the REST surface one-to-one and translates
// error envelopes into APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"taskboard/internal/model"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Session is the register/login response payload.
type Session struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// APIError carries the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
}

// Error prefers the first field-level message so forms surface the most
// specific problem.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return e.Fields[0].Message
	}
	return e.Message
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/users/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/users/login", map[string]string{
		"email": email, "password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Profile(ctx context.Context) (*model.PublicUser, error) {
	var u model.PublicUser
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name, description string) (*model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", map[string]string{
		"name": name, "description": description,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

func (c *Client) TasksByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+projectID+"/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Tasks(ctx context.Context, q model.TaskListQuery) (*model.TaskPage, error) {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.DueDate != "" {
		values.Set("dueDate", q.DueDate)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "/api/tasks"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page model.TaskPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateTask(ctx context.Context, in model.CreateTaskInput) (*model.Task, error) {
	var t model.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, in model.UpdateTaskInput) (*model.Task, error) {
	var t model.Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: res.StatusCode, Message: res.Status}
		var envelope struct {
			Message string `json:"message"`
			Errors  []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
			apiErr.Fields = envelope.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
