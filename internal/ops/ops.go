// Package ops implements the three deterministic task operations behind the
// conversational assistant: create, enumerate, and complete. The operation
// set is closed: an Invocation selects one operation by tag and carries its
// typed arguments, and every dispatch produces a typed Outcome. No error
// escapes the operation boundary.
package ops

import (
	"fmt"

	"tasktalk/internal/due"
	"tasktalk/internal/service"
)

// Op identifies one of the task operations.
type Op int

const (
	OpUnknown Op = iota
	OpAdd
	OpList
	OpComplete
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpList:
		return "list"
	case OpComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// AddArgs are the arguments for the add operation.
type AddArgs struct {
	// Description is the task text. Forwarded as-is; the store may reject
	// empty content.
	Description string

	// DueDate is the raw due-date input, normalized before submission.
	DueDate string

	// Priority is 1 (normal) to 4 (urgent). Zero defaults to 1. Out-of-range
	// values are passed through and any store rejection surfaces as a
	// store error.
	Priority int
}

// CompleteArgs are the arguments for the complete operation.
type CompleteArgs struct {
	// Position is a 1-based index into a fresh fetch of the active-task
	// set, not a stable store identifier.
	Position int
}

// Invocation is a tagged variant: Op selects which argument struct applies.
type Invocation struct {
	Op       Op
	Add      AddArgs
	Complete CompleteArgs
}

// ErrorKind classifies operation failures.
type ErrorKind int

const (
	// ErrStore covers network, auth, and validation failures from the
	// task store.
	ErrStore ErrorKind = iota + 1

	// ErrPosition means a complete position outside the current fetch.
	ErrPosition

	// ErrUnknownOp means the invocation tag matched no operation.
	ErrUnknownOp
)

// OpError is the failure side of an Outcome.
type OpError struct {
	Kind ErrorKind
	Err  error

	// Max is the valid upper bound of the current fetch, set for ErrPosition.
	Max int
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return e.Err.Error()
}

// AddResult is the success payload of the add operation.
type AddResult struct {
	Task service.Task
	Due  due.Token
}

// ListResult is the success payload of the list operation.
type ListResult struct {
	Tasks []service.Task
}

// CompleteResult is the success payload of the complete operation.
type CompleteResult struct {
	Task service.Task
}

// Outcome is the result of dispatching an Invocation. Exactly one of the
// payload fields matching Op is set on success; Err is set on failure.
type Outcome struct {
	Op       Op
	Add      *AddResult
	List     *ListResult
	Complete *CompleteResult
	Err      *OpError
}

func storeFailure(op Op, err error) Outcome {
	return Outcome{Op: op, Err: &OpError{Kind: ErrStore, Err: err}}
}

func positionFailure(pos, max int) Outcome {
	return Outcome{Op: OpComplete, Err: &OpError{
		Kind: ErrPosition,
		Err:  fmt.Errorf("task number %d out of range", pos),
		Max:  max,
	}}
}
