// Package agent wires the task operations into an LLM tool-calling loop.
// The model decides which operation to run; the operations themselves stay
// deterministic and live in the ops package.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tmc/langchaingo/llms"

	"tasktalk/internal/ops"
	"tasktalk/internal/output"
)

const systemPrompt = `You are a helpful AI assistant that helps manage tasks and answers general questions.
You have access to the following tools for task management:
- add_task: Add a new task with optional due date and priority
- list_tasks: List all active tasks
- complete_task: Mark a task as complete

For task-related requests, use the appropriate tool. For general questions, use your knowledge to provide helpful responses.
Be concise and to the point in your responses.`

// maxToolRounds bounds the tool-call loop for a single turn.
const maxToolRounds = 5

const defaultTemperature = 0.3

// Router turns one line of user input into a reply, invoking task
// operations as the model requests them.
type Router struct {
	model       llms.Model
	exec        *ops.Executor
	log         *log.Logger
	temperature float64
}

// NewRouter creates a router over the given model and executor.
func NewRouter(model llms.Model, exec *ops.Executor, logger *log.Logger) *Router {
	return &Router{
		model:       model,
		exec:        exec,
		log:         logger,
		temperature: defaultTemperature,
	}
}

// Turn processes one line of user input and returns the assistant's reply.
// Each turn starts fresh: no conversation state is carried between turns.
func (r *Router) Turn(ctx context.Context, input string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, input),
	}
	opts := []llms.CallOption{
		llms.WithTools(taskTools()),
		llms.WithTemperature(r.temperature),
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := r.model.GenerateContent(ctx, messages, opts...)
		if err != nil {
			return "", fmt.Errorf("llm request: %w", err)
		}
		if resp == nil || len(resp.Choices) == 0 {
			return "", errors.New("empty response from LLM")
		}

		choice := resp.Choices[0]
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		for _, tc := range choice.ToolCalls {
			assistant.Parts = append(assistant.Parts, tc)
		}
		messages = append(messages, assistant)

		for _, tc := range choice.ToolCalls {
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: tc.ID,
					Name:       toolName(tc),
					Content:    r.runTool(ctx, tc),
				}},
			})
		}
	}

	return "", fmt.Errorf("no answer after %d tool rounds", maxToolRounds)
}

// runTool executes one tool call. Failures become failure strings so the
// model can relay them instead of the whole turn aborting.
func (r *Router) runTool(ctx context.Context, tc llms.ToolCall) string {
	inv, err := decodeInvocation(tc)
	if err != nil {
		r.log.Warn("rejected tool call", "tool", toolName(tc), "err", err)
		return "❌ " + err.Error()
	}

	r.log.Debug("dispatching tool call", "tool", toolName(tc), "op", inv.Op.String())
	return output.FormatOutcome(r.exec.Dispatch(ctx, inv))
}
