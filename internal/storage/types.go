package storage

import (
	"errors"
	"time"
)

// ErrClosed is returned by Append after Close.
var ErrClosed = errors.New("storage: audit log closed")

// Config selects the audit backend. Driver is "file" (JSON Lines), "sqlite"
// (needs the sqlite build tag) or ""/"none" for no audit trail.
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// Audit actions.
const (
	ActionAdd       = "add"
	ActionRemove    = "remove"
	ActionConflict  = "conflict"
	ActionDuplicate = "duplicate"
	ActionNotFound  = "not_found"
	ActionInvalid   = "invalid"
)

// Entry records one registry operation.
type Entry struct {
	At          time.Time `json:"at"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Start       string    `json:"start,omitempty"`
	End         string    `json:"end,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Conflict    string    `json:"conflict,omitempty"` // description of the stored task that blocked an add
	Error       string    `json:"error,omitempty"`
}
