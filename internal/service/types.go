// Package service defines the backend-agnostic interface for task operations.
package service

// Due is the structured due date the store attaches to a task.
type Due struct {
	// Date is the resolved calendar date.
	Date string

	// Datetime is the full date-time when the task carries a time of day,
	// in "<date>T<time>" form. Empty for date-only tasks.
	Datetime string

	// String is the human-readable due string the store derived the date from.
	String string
}

// Task represents a single task item.
type Task struct {
	ID       string
	Content  string
	Priority int // 1 (normal) to 4 (urgent)
	Due      *Due
}

// NewTask describes a task to be created.
type NewTask struct {
	Content string

	// DueString is the due string submitted to the store. Empty means no
	// due date.
	DueString string

	Priority int
}
