package registry

import (
	"errors"
	"fmt"

	"daysched/internal/notifier"
	"daysched/internal/task"
)

var (
	ErrDuplicateTask = errors.New("task already exists")
	ErrConflict      = errors.New("task conflicts with existing schedule")
	ErrNotFound      = errors.New("task not found")
)

// ConflictError is returned by Add when the candidate overlaps a stored task.
type ConflictError struct {
	Candidate task.Task
	Existing  task.Task
}

func (e *ConflictError) Error() string {
	return notifier.ConflictPrefix + e.Candidate.Description
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// DuplicateTaskError is returned by Add when the description is already registered.
type DuplicateTaskError struct {
	Description string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("task %q already exists", e.Description)
}

func (e *DuplicateTaskError) Is(target error) bool { return target == ErrDuplicateTask }

// NotFoundError is returned by Remove for an unknown description.
type NotFoundError struct {
	Description string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.Description)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
