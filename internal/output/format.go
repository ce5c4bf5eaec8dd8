// Package output renders operation outcomes as status-prefixed display
// strings. Formatting lives here so the operations themselves stay typed.
package output

import (
	"fmt"
	"strings"

	"tasktalk/internal/due"
	"tasktalk/internal/ops"
	"tasktalk/internal/service"
)

// NoTasksMessage is returned for an empty active-task set. Not an error.
const NoTasksMessage = "No tasks found."

// ListHeader precedes the numbered task listing.
const ListHeader = "📋 Your tasks:"

// FormatOutcome renders an operation outcome as user-facing text.
func FormatOutcome(o ops.Outcome) string {
	if o.Err != nil {
		return formatError(o)
	}
	switch o.Op {
	case ops.OpAdd:
		return formatAdd(*o.Add)
	case ops.OpList:
		return formatList(*o.List)
	case ops.OpComplete:
		return "✅ Task completed: " + o.Complete.Task.Content
	default:
		return "❌ Nothing to report"
	}
}

func formatAdd(r ops.AddResult) string {
	dueText := "No due date"
	switch {
	case r.Task.Due != nil && r.Task.Due.Date != "":
		dueText = r.Task.Due.Date
	case r.Due.Kind == due.Unparsed:
		dueText = fmt.Sprintf("No due date; did not understand %q", r.Due.Raw)
	}
	return fmt.Sprintf("✅ Task added: %s (Due: %s)", r.Task.Content, dueText)
}

func formatList(r ops.ListResult) string {
	if len(r.Tasks) == 0 {
		return NoTasksMessage
	}
	lines := make([]string, 0, len(r.Tasks)+1)
	lines = append(lines, ListHeader)
	for i, t := range r.Tasks {
		lines = append(lines, fmt.Sprintf("%d. %s%s", i+1, t.Content, dueSuffix(t.Due)))
	}
	return strings.Join(lines, "\n")
}

// dueSuffix renders " (Due: <date>)" with the time of day appended as
// hour:minute when the stored datetime carries one.
func dueSuffix(d *service.Due) string {
	if d == nil {
		return ""
	}
	s := " (Due: " + d.Date
	if d.Datetime != "" {
		if _, clock, ok := strings.Cut(d.Datetime, "T"); ok && len(clock) >= 5 {
			s += " " + clock[:5]
		}
	}
	return s + ")"
}

func formatError(o ops.Outcome) string {
	if o.Err.Kind == ops.ErrPosition {
		return fmt.Sprintf("❌ Invalid task number. Please use a number between 1 and %d", o.Err.Max)
	}
	switch o.Op {
	case ops.OpAdd:
		return "❌ Error adding task: " + o.Err.Error()
	case ops.OpList:
		return "❌ Error fetching tasks: " + o.Err.Error()
	case ops.OpComplete:
		return "❌ Error completing task: " + o.Err.Error()
	default:
		return "❌ " + o.Err.Error()
	}
}
