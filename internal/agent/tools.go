package agent

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"tasktalk/internal/ops"
)

// Tool names exposed to the model.
const (
	toolAddTask      = "add_task"
	toolListTasks    = "list_tasks"
	toolCompleteTask = "complete_task"
)

// taskTools returns the tool definitions offered to the model on every turn.
func taskTools() []llms.Tool {
	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolAddTask,
				Description: "Add a new task with an optional due date and priority.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"task_description": map[string]any{
							"type":        "string",
							"description": "The description of the task",
						},
						"due_date": map[string]any{
							"type":        "string",
							"description": "Optional due date in DD-MM-YYYY format or 'today'/'tomorrow'",
						},
						"priority": map[string]any{
							"type":        "integer",
							"description": "Task priority from 1 (normal) to 4 (urgent)",
						},
					},
					"required": []string{"task_description"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolListTasks,
				Description: "List all active tasks.",
				Parameters: map[string]any{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolCompleteTask,
				Description: "Mark a task as complete.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"task_id": map[string]any{
							"type":        "integer",
							"description": "The number of the task from the task list",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
	}
}

// decodeInvocation maps a model tool call onto the closed operation set.
// Argument decoding is strict: malformed payloads fail here and never reach
// the store.
func decodeInvocation(tc llms.ToolCall) (ops.Invocation, error) {
	if tc.FunctionCall == nil {
		return ops.Invocation{}, errors.New("tool call has no function payload")
	}

	raw := tc.FunctionCall.Arguments
	switch tc.FunctionCall.Name {
	case toolAddTask:
		var args struct {
			Description string `json:"task_description"`
			DueDate     string `json:"due_date"`
			Priority    int    `json:"priority"`
		}
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return ops.Invocation{}, fmt.Errorf("%s arguments: %w", toolAddTask, err)
		}
		return ops.Invocation{Op: ops.OpAdd, Add: ops.AddArgs{
			Description: args.Description,
			DueDate:     args.DueDate,
			Priority:    args.Priority,
		}}, nil

	case toolListTasks:
		return ops.Invocation{Op: ops.OpList}, nil

	case toolCompleteTask:
		var args struct {
			TaskID int `json:"task_id"`
		}
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return ops.Invocation{}, fmt.Errorf("%s arguments: %w", toolCompleteTask, err)
		}
		return ops.Invocation{Op: ops.OpComplete, Complete: ops.CompleteArgs{
			Position: args.TaskID,
		}}, nil

	default:
		return ops.Invocation{}, fmt.Errorf("unknown tool: %s", tc.FunctionCall.Name)
	}
}

func toolName(tc llms.ToolCall) string {
	if tc.FunctionCall == nil {
		return ""
	}
	return tc.FunctionCall.Name
}
