package agent

import (
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"tasktalk/internal/ops"
)

func toolCall(name, args string) llms.ToolCall {
	return llms.ToolCall{
		ID:           "call-1",
		Type:         "function",
		FunctionCall: &llms.FunctionCall{Name: name, Arguments: args},
	}
}

func TestDecodeAddTask(t *testing.T) {
	inv, err := decodeInvocation(toolCall(toolAddTask,
		`{"task_description": "Buy milk", "due_date": "today", "priority": 2}`))
	if err != nil {
		t.Fatalf("decodeInvocation: %v", err)
	}
	if inv.Op != ops.OpAdd {
		t.Errorf("expected OpAdd, got %v", inv.Op)
	}
	want := ops.AddArgs{Description: "Buy milk", DueDate: "today", Priority: 2}
	if inv.Add != want {
		t.Errorf("got %+v, want %+v", inv.Add, want)
	}
}

func TestDecodeAddTaskOptionalFields(t *testing.T) {
	inv, err := decodeInvocation(toolCall(toolAddTask, `{"task_description": "Buy milk"}`))
	if err != nil {
		t.Fatalf("decodeInvocation: %v", err)
	}
	if inv.Add.DueDate != "" || inv.Add.Priority != 0 {
		t.Errorf("expected zero optional fields, got %+v", inv.Add)
	}
}

func TestDecodeListTasksIgnoresArguments(t *testing.T) {
	inv, err := decodeInvocation(toolCall(toolListTasks, ""))
	if err != nil {
		t.Fatalf("decodeInvocation: %v", err)
	}
	if inv.Op != ops.OpList {
		t.Errorf("expected OpList, got %v", inv.Op)
	}
}

func TestDecodeCompleteTask(t *testing.T) {
	inv, err := decodeInvocation(toolCall(toolCompleteTask, `{"task_id": 2}`))
	if err != nil {
		t.Fatalf("decodeInvocation: %v", err)
	}
	if inv.Op != ops.OpComplete || inv.Complete.Position != 2 {
		t.Errorf("got %+v", inv)
	}
}

func TestDecodeMalformedArguments(t *testing.T) {
	_, err := decodeInvocation(toolCall(toolAddTask, `{"task_description": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), toolAddTask) {
		t.Errorf("expected tool name in error, got %q", err)
	}
}

func TestDecodeUnknownTool(t *testing.T) {
	_, err := decodeInvocation(toolCall("drop_database", `{}`))
	if err == nil || !strings.Contains(err.Error(), "unknown tool") {
		t.Fatalf("expected unknown tool error, got %v", err)
	}
}

func TestDecodeMissingFunctionPayload(t *testing.T) {
	_, err := decodeInvocation(llms.ToolCall{ID: "call-1"})
	if err == nil {
		t.Fatal("expected error for missing function payload")
	}
}

func TestTaskToolsCoverTheOperationSet(t *testing.T) {
	tools := taskTools()
	if len(tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(tools))
	}
	names := map[string]bool{}
	for _, tool := range tools {
		if tool.Function == nil {
			t.Fatal("tool without function definition")
		}
		names[tool.Function.Name] = true
	}
	for _, want := range []string{toolAddTask, toolListTasks, toolCompleteTask} {
		if !names[want] {
			t.Errorf("missing tool %s", want)
		}
	}
}
