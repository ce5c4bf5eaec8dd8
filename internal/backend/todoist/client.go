// Package todoist implements service.Service against the Todoist REST v2 API.
package todoist

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"tasktalk/internal/service"
)

// DefaultBaseURL is the Todoist REST v2 endpoint.
const DefaultBaseURL = "https://api.todoist.com/rest/v2"

// task is the wire representation of a Todoist task.
type task struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Priority int      `json:"priority"`
	Due      *taskDue `json:"due"`
}

type taskDue struct {
	Date     string `json:"date"`
	Datetime string `json:"datetime,omitempty"`
	String   string `json:"string"`
}

type createRequest struct {
	Content   string `json:"content"`
	DueString string `json:"due_string,omitempty"`
	Priority  int    `json:"priority,omitempty"`
}

// Client implements service.Service using Todoist.
type Client struct {
	http *resty.Client
}

// New creates a Todoist client authenticated with the given token.
// No request timeout or retry is configured: the session issues one
// synchronous call at a time and reports each failure once.
func New(token string) *Client {
	return NewWithBaseURL(token, DefaultBaseURL)
}

// NewWithBaseURL creates a client against a custom endpoint (for testing).
func NewWithBaseURL(token, baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(token)
	return &Client{http: client}
}

// ActiveTasks returns all active tasks in API order.
func (c *Client) ActiveTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []task
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tasks).
		Get("/tasks")
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("fetch tasks", resp)
	}

	result := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, toServiceTask(t))
	}
	return result, nil
}

// CreateTask creates a task and returns the stored representation.
func (c *Client) CreateTask(ctx context.Context, nt service.NewTask) (service.Task, error) {
	var created task
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createRequest{
			Content:   nt.Content,
			DueString: nt.DueString,
			Priority:  nt.Priority,
		}).
		SetResult(&created).
		Post("/tasks")
	if err != nil {
		return service.Task{}, fmt.Errorf("create task: %w", err)
	}
	if resp.IsError() {
		return service.Task{}, apiError("create task", resp)
	}
	return toServiceTask(created), nil
}

// CloseTask marks a task as completed.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/tasks/" + id + "/close")
	if err != nil {
		return fmt.Errorf("close task: %w", err)
	}
	if resp.IsError() {
		return apiError("close task", resp)
	}
	return nil
}

func toServiceTask(t task) service.Task {
	st := service.Task{
		ID:       t.ID,
		Content:  t.Content,
		Priority: t.Priority,
	}
	if t.Due != nil {
		st.Due = &service.Due{
			Date:     t.Due.Date,
			Datetime: t.Due.Datetime,
			String:   t.Due.String,
		}
	}
	return st
}

// apiError translates an HTTP error status into a user-facing error.
func apiError(op string, resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: invalid or expired task-store token", op)
	case http.StatusNotFound:
		return fmt.Errorf("%s: not found", op)
	}
	if body := strings.TrimSpace(resp.String()); body != "" {
		return fmt.Errorf("%s: %s: %s", op, resp.Status(), body)
	}
	return fmt.Errorf("%s: %s", op, resp.Status())
}
