package task

import (
	"fmt"
	"strings"
)

// Priority is informational only; nothing in the scheduler orders or rejects by it
// unless Factory.StrictPriority is set.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var knownPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Known reports whether p is one of Low, Medium, High (exact case).
func (p Priority) Known() bool {
	for _, k := range knownPriorities {
		if p == k {
			return true
		}
	}
	return false
}

// Canonical maps p case-insensitively onto a known priority.
func (p Priority) Canonical() (Priority, bool) {
	s := strings.TrimSpace(string(p))
	for _, k := range knownPriorities {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return p, false
}

// Task is an immutable, validated interval of the day.
type Task struct {
	Description string
	Start       Clock
	End         Clock
	Priority    Priority
}

// New validates and builds a Task. Start must be strictly before End.
func New(description string, start, end Clock, priority Priority) (Task, error) {
	t := Task{
		Description: description,
		Start:       start,
		End:         end,
		Priority:    priority,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks what New checks, for tasks built as struct literals.
// Failures match ErrInvalidTask.
func (t Task) Validate() error {
	switch {
	case strings.TrimSpace(t.Description) == "":
		return invalid("description required")
	case !t.Start.Valid():
		return invalid("start time out of range (%d minutes)", int(t.Start))
	case !t.End.Valid():
		return invalid("end time out of range (%d minutes)", int(t.End))
	case t.Start >= t.End:
		return invalid("start time %s must be before end time %s", t.Start, t.End)
	}
	return nil
}

// Overlaps reports whether t and o share any instant. Both bounds are
// inclusive: a task ending at 09:00 overlaps one starting at 09:00.
func (t Task) Overlaps(o Task) bool {
	return !(t.End < o.Start || t.Start > o.End)
}

// String renders "<start> - <end>: <description> [<priority>]".
func (t Task) String() string {
	return fmt.Sprintf("%s - %s: %s [%s]", t.Start, t.End, t.Description, t.Priority)
}
