// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tasktalk/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int

	// Error injection for testing
	ActiveTasksErr error
	CreateTaskErr  error
	CloseTaskErr   error

	// Closed records the store IDs closed, in call order.
	Closed []string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds an active task and returns its generated store ID.
func (f *FakeService) AddTask(content string, d *service.Due) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("task-%d", f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:       id,
		Content:  content,
		Priority: 1,
		Due:      d,
	})
	return id
}

// SetTasks replaces the active set wholesale, simulating store-side
// reordering or membership changes between two fetches.
func (f *FakeService) SetTasks(tasks []service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]service.Task(nil), tasks...)
}

// ActiveTasks implements service.Service.
func (f *FakeService) ActiveTasks(ctx context.Context) ([]service.Task, error) {
	if f.ActiveTasksErr != nil {
		return nil, f.ActiveTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service. The due string is echoed back as
// the resolved date, like a store that accepted it verbatim.
func (f *FakeService) CreateTask(ctx context.Context, nt service.NewTask) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("task-%d", f.nextID)
	f.nextID++
	t := service.Task{
		ID:       id,
		Content:  nt.Content,
		Priority: nt.Priority,
	}
	if nt.DueString != "" {
		t.Due = &service.Due{Date: nt.DueString, String: nt.DueString}
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// CloseTask implements service.Service.
func (f *FakeService) CloseTask(ctx context.Context, id string) error {
	if f.CloseTaskErr != nil {
		return f.CloseTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			f.Closed = append(f.Closed, id)
			return nil
		}
	}
	return ErrNotFound
}
