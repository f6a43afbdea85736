package notifier

import (
	"time"

	"daysched/internal/task"
)

// ConflictPrefix starts every conflict message shown to users.
const ConflictPrefix = "Task conflicts with existing schedule - "

// Config controls the hub.
type Config struct {
	// HistorySize bounds the in-memory event history (default 50).
	HistorySize int
}

// Event describes a rejected addition.
type Event struct {
	ID       string
	At       time.Time
	Task     task.Task // the rejected candidate
	Existing task.Task // first stored task it overlapped
}

// Message renders the user-facing conflict line for the candidate.
func (e Event) Message() string {
	return ConflictPrefix + e.Task.Description
}

// Listener receives conflict events.
type Listener func(Event) error
