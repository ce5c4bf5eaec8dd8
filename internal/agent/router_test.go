package agent_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tmc/langchaingo/llms"

	"tasktalk/internal/agent"
	"tasktalk/internal/ops"
	"tasktalk/internal/testutil"
)

// scriptedModel returns canned responses in order and records every request.
type scriptedModel struct {
	responses []*llms.ContentResponse
	err       error

	calls    int
	requests [][]llms.MessageContent
	opts     []llms.CallOptions
}

func (m *scriptedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.requests = append(m.requests, messages)
	var applied llms.CallOptions
	for _, opt := range options {
		opt(&applied)
	}
	m.opts = append(m.opts, applied)

	if m.err != nil {
		return nil, m.err
	}
	if m.calls >= len(m.responses) {
		return nil, errors.New("scripted model exhausted")
	}
	resp := m.responses[m.calls]
	m.calls++
	return resp, nil
}

func (m *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func textResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func toolCallResponse(id, name, args string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		ToolCalls: []llms.ToolCall{{
			ID:           id,
			Type:         "function",
			FunctionCall: &llms.FunctionCall{Name: name, Arguments: args},
		}},
	}}}
}

func newRouter(model llms.Model, svc *testutil.FakeService) *agent.Router {
	logger := log.New(io.Discard)
	return agent.NewRouter(model, ops.NewExecutor(svc, logger), logger)
}

func TestTurnPlainAnswer(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		textResponse("The capital of France is Paris."),
	}}
	router := newRouter(model, testutil.NewFakeService())

	reply, err := router.Turn(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if reply != "The capital of France is Paris." {
		t.Errorf("unexpected reply: %q", reply)
	}
	if model.calls != 1 {
		t.Errorf("expected a single model call, got %d", model.calls)
	}
	if len(model.opts) == 0 || len(model.opts[0].Tools) != 3 {
		t.Error("expected the three task tools offered to the model")
	}
}

func TestTurnExecutesToolCallRoundTrip(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", nil)

	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "list_tasks", "{}"),
		textResponse("You have one task: Buy milk."),
	}}
	router := newRouter(model, svc)

	reply, err := router.Turn(context.Background(), "what's on my list?")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if reply != "You have one task: Buy milk." {
		t.Errorf("unexpected reply: %q", reply)
	}
	if model.calls != 2 {
		t.Fatalf("expected two model calls, got %d", model.calls)
	}

	// The second request must carry the assistant tool call and the
	// formatted tool result.
	second := model.requests[1]
	if len(second) != 4 {
		t.Fatalf("expected system+user+assistant+tool messages, got %d", len(second))
	}
	toolMsg := second[3]
	if toolMsg.Role != llms.ChatMessageTypeTool {
		t.Fatalf("expected tool message, got role %q", toolMsg.Role)
	}
	resp, ok := toolMsg.Parts[0].(llms.ToolCallResponse)
	if !ok {
		t.Fatalf("expected ToolCallResponse part, got %T", toolMsg.Parts[0])
	}
	if resp.ToolCallID != "call-1" {
		t.Errorf("tool result not tied to the call: %q", resp.ToolCallID)
	}
	if !strings.Contains(resp.Content, "Buy milk") {
		t.Errorf("expected listing in tool result, got %q", resp.Content)
	}
}

func TestTurnCompleteToolClosesTask(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("first", nil)
	secondID := svc.AddTask("second", nil)

	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "complete_task", `{"task_id": 2}`),
		textResponse("Done, second is completed."),
	}}
	router := newRouter(model, svc)

	if _, err := router.Turn(context.Background(), "complete task 2"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if len(svc.Closed) != 1 || svc.Closed[0] != secondID {
		t.Errorf("expected close request for %s, got %v", secondID, svc.Closed)
	}
}

func TestTurnMalformedToolArgumentsBecomeFailureResult(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "add_task", `{"task_description": `),
		textResponse("Sorry, I could not add that task."),
	}}
	router := newRouter(model, testutil.NewFakeService())

	reply, err := router.Turn(context.Background(), "add a task")
	if err != nil {
		t.Fatalf("Turn should not fail on a bad tool payload: %v", err)
	}
	if reply != "Sorry, I could not add that task." {
		t.Errorf("unexpected reply: %q", reply)
	}

	resp := model.requests[1][3].Parts[0].(llms.ToolCallResponse)
	if !strings.HasPrefix(resp.Content, "❌") {
		t.Errorf("expected failure tool result, got %q", resp.Content)
	}
}

func TestTurnModelErrorPropagates(t *testing.T) {
	model := &scriptedModel{err: errors.New("rate limited")}
	router := newRouter(model, testutil.NewFakeService())

	_, err := router.Turn(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected wrapped model error, got %v", err)
	}
}

func TestTurnBoundsToolRounds(t *testing.T) {
	// A model that always asks for another tool call must not loop forever.
	responses := make([]*llms.ContentResponse, 0, 8)
	for i := 0; i < 8; i++ {
		responses = append(responses, toolCallResponse("call-n", "list_tasks", "{}"))
	}
	model := &scriptedModel{responses: responses}
	router := newRouter(model, testutil.NewFakeService())

	_, err := router.Turn(context.Background(), "list forever")
	if err == nil {
		t.Fatal("expected error after exhausting tool rounds")
	}
	if model.calls > 5 {
		t.Errorf("expected at most 5 model calls, got %d", model.calls)
	}
}
