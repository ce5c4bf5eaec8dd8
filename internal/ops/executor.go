package ops

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"tasktalk/internal/due"
	"tasktalk/internal/service"
)

// Executor dispatches invocations against a task store. It holds no state
// between calls: every list and complete re-fetches the active set fresh.
type Executor struct {
	svc service.Service
	log *log.Logger
}

// NewExecutor creates an executor over the given store.
func NewExecutor(svc service.Service, logger *log.Logger) *Executor {
	return &Executor{svc: svc, log: logger}
}

// Dispatch executes one invocation and returns its outcome. Failures are
// carried in the outcome; Dispatch never returns an error.
func (e *Executor) Dispatch(ctx context.Context, inv Invocation) Outcome {
	switch inv.Op {
	case OpAdd:
		return e.add(ctx, inv.Add)
	case OpList:
		return e.list(ctx)
	case OpComplete:
		return e.complete(ctx, inv.Complete)
	default:
		return Outcome{Op: inv.Op, Err: &OpError{
			Kind: ErrUnknownOp,
			Err:  fmt.Errorf("unknown operation %d", int(inv.Op)),
		}}
	}
}

func (e *Executor) add(ctx context.Context, args AddArgs) Outcome {
	tok := due.Normalize(args.DueDate)
	priority := args.Priority
	if priority == 0 {
		priority = 1
	}

	task, err := e.svc.CreateTask(ctx, service.NewTask{
		Content:   args.Description,
		DueString: tok.DueString(),
		Priority:  priority,
	})
	if err != nil {
		e.log.Warn("create task failed", "err", err)
		return storeFailure(OpAdd, err)
	}

	e.log.Debug("task created", "id", task.ID, "due", tok.DueString())
	return Outcome{Op: OpAdd, Add: &AddResult{Task: task, Due: tok}}
}

func (e *Executor) list(ctx context.Context) Outcome {
	tasks, err := e.svc.ActiveTasks(ctx)
	if err != nil {
		e.log.Warn("fetch tasks failed", "err", err)
		return storeFailure(OpList, err)
	}
	return Outcome{Op: OpList, List: &ListResult{Tasks: tasks}}
}

func (e *Executor) complete(ctx context.Context, args CompleteArgs) Outcome {
	// Fresh fetch: the position resolves against the store's current
	// ordering, which may differ from any listing the user saw earlier.
	tasks, err := e.svc.ActiveTasks(ctx)
	if err != nil {
		e.log.Warn("fetch tasks failed", "err", err)
		return storeFailure(OpComplete, err)
	}

	if args.Position < 1 || args.Position > len(tasks) {
		return positionFailure(args.Position, len(tasks))
	}

	task := tasks[args.Position-1]
	if err := e.svc.CloseTask(ctx, task.ID); err != nil {
		e.log.Warn("close task failed", "id", task.ID, "err", err)
		return storeFailure(OpComplete, err)
	}

	e.log.Debug("task completed", "id", task.ID, "position", args.Position)
	return Outcome{Op: OpComplete, Complete: &CompleteResult{Task: task}}
}
