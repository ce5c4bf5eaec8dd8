// Package googletasks implements service.Service using the Google Tasks API.
//
// The store has no priority field, so task priority is accepted and
// dropped. Due strings are resolved client-side into the RFC3339 dates the
// API expects; Google Tasks records dates only, never a time of day.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasktalk/internal/config"
	"tasktalk/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks per page.
	PageSize = 100

	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"
)

// Client implements service.Service using Google Tasks.
type Client struct {
	svc *tasks.Service
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist in the config directory.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source auto-refreshes expired access tokens.
	tokenSource := oauthConfig.TokenSource(ctx, &token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// ActiveTasks returns all open tasks in the default list, in API order.
func (c *Client) ActiveTasks(ctx context.Context) ([]service.Task, error) {
	var result []service.Task
	err := c.svc.Tasks.List(DefaultListID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				result = append(result, toServiceTask(t))
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// CreateTask creates a task in the default list.
func (c *Client) CreateTask(ctx context.Context, nt service.NewTask) (service.Task, error) {
	t := &tasks.Task{Title: nt.Content}
	if due, ok := resolveDue(nt.DueString, time.Now()); ok {
		t.Due = due
	}

	created, err := c.svc.Tasks.Insert(DefaultListID, t).Context(ctx).Do()
	if err != nil {
		return service.Task{}, wrapError(err)
	}
	return toServiceTask(created), nil
}

// CloseTask marks a task as completed.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	_, err := c.svc.Tasks.Patch(DefaultListID, id, &tasks.Task{
		Status: "completed",
	}).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

func toServiceTask(t *tasks.Task) service.Task {
	st := service.Task{
		ID:       t.Id,
		Content:  t.Title,
		Priority: 1,
	}
	if t.Due != "" {
		// The API reports due as RFC3339 with a zeroed, meaningless time
		// portion. Keep the date only.
		st.Due = &service.Due{Date: t.Due[:min(10, len(t.Due))]}
	}
	return st
}

// resolveDue converts a due string into the RFC3339 date the API expects.
// Unrecognized input resolves to no due date.
func resolveDue(s string, now time.Time) (string, bool) {
	switch strings.ToLower(s) {
	case "":
		return "", false
	case "today":
		return now.Format("2006-01-02") + "T00:00:00Z", true
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02") + "T00:00:00Z", true
	}
	if d, err := time.Parse("02-01-2006", s); err == nil {
		return d.Format("2006-01-02") + "T00:00:00Z", true
	}
	return "", false
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (refresh token.json)")
	}
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}
	return err
}
