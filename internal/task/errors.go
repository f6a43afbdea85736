package task

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidTask       = errors.New("invalid task")
)

// TimeFormatError reports a time-of-day text that is not strict HH:MM.
type TimeFormatError struct {
	Field string // "start" | "end" (empty when parsed standalone)
	Value string
}

func (e *TimeFormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid time format %q (use HH:MM, 00:00-23:59)", e.Value)
	}
	return fmt.Sprintf("invalid %s time format %q (use HH:MM, 00:00-23:59)", e.Field, e.Value)
}

func (e *TimeFormatError) Unwrap() error { return ErrInvalidTimeFormat }

// invalid wraps ErrInvalidTask with a reason.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTask, fmt.Sprintf(format, args...))
}
