// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All store API calls go through this interface.
// Operations never import a backend SDK directly.
type Service interface {
	// ActiveTasks returns all active tasks in store order.
	ActiveTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the stored representation.
	CreateTask(ctx context.Context, t NewTask) (Task, error)

	// CloseTask marks the task with the given store ID as completed.
	CloseTask(ctx context.Context, id string) error
}
