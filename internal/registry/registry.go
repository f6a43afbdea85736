// Package registry owns the day's tasks and enforces that no two of them overlap.
package registry

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"daysched/internal/notifier"
	"daysched/internal/storage"
	"daysched/internal/task"
	"daysched/pkg/logx"
)

const auditTimeout = 2 * time.Second

// Auditor receives one entry per registry operation. storage.Log satisfies it.
type Auditor interface {
	Append(ctx context.Context, e storage.Entry) error
}

type Option func(*Registry)

func WithLogger(log logx.Logger) Option { return func(r *Registry) { r.log = log } }

// WithHub shares an existing hub instead of creating a private one.
func WithHub(h *notifier.Hub) Option { return func(r *Registry) { r.hub = h } }

func WithAudit(a Auditor) Option { return func(r *Registry) { r.audit = a } }

// Registry is safe for concurrent use. The conflict scan and the insert in
// Add happen under one lock, so two overlapping tasks can never both land.
type Registry struct {
	log   logx.Logger
	hub   *notifier.Hub
	audit Auditor

	mu    sync.RWMutex
	tasks []task.Task // insertion order
}

func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	if r.log.IsZero() {
		r.log = logx.Nop()
	}
	if r.hub == nil {
		r.hub = notifier.NewHub(notifier.Config{}, r.log)
	}
	return r
}

// Add stores t unless it is invalid (task.ErrInvalidTask), its description
// is taken (*DuplicateTaskError) or its interval overlaps a stored task
// (*ConflictError). On conflict, listeners are notified before Add returns.
// A failed Add leaves the registry unchanged.
func (r *Registry) Add(t task.Task) error {
	if err := t.Validate(); err != nil {
		r.log.Info("add rejected: invalid", logx.String("task", t.Description), logx.Err(err))
		r.record(entryFor(storage.ActionInvalid, t, err))
		return err
	}

	r.mu.Lock()
	if r.indexLocked(t.Description) >= 0 {
		r.mu.Unlock()
		err := &DuplicateTaskError{Description: t.Description}
		r.log.Info("add rejected: duplicate", logx.String("task", t.Description))
		r.record(entryFor(storage.ActionDuplicate, t, err))
		return err
	}
	if existing, ok := task.FindConflict(r.tasks, t); ok {
		r.mu.Unlock()
		err := &ConflictError{Candidate: t, Existing: existing}
		r.log.Info("add rejected: conflict",
			logx.String("task", t.Description),
			logx.String("existing", existing.Description),
		)
		e := entryFor(storage.ActionConflict, t, err)
		e.Conflict = existing.Description
		r.record(e)
		// Listeners run outside the lock so they may call back into the registry.
		r.hub.Publish(notifier.Event{Task: t, Existing: existing})
		return err
	}
	r.tasks = append(r.tasks, t)
	n := len(r.tasks)
	r.mu.Unlock()

	r.log.Info("task added",
		logx.String("task", t.Description),
		logx.Stringer("start", t.Start),
		logx.Stringer("end", t.End),
		logx.String("priority", string(t.Priority)),
		logx.Int("tasks", n),
	)
	r.record(entryFor(storage.ActionAdd, t, nil))
	return nil
}

// Remove deletes the task with exactly this description.
func (r *Registry) Remove(description string) error {
	r.mu.Lock()
	i := r.indexLocked(description)
	if i < 0 {
		r.mu.Unlock()
		err := &NotFoundError{Description: description}
		r.log.Info("remove rejected: not found", logx.String("task", description))
		r.record(storage.Entry{Action: storage.ActionNotFound, Description: description, Error: err.Error()})
		return err
	}
	removed := r.tasks[i]
	r.tasks = slices.Delete(r.tasks, i, i+1)
	n := len(r.tasks)
	r.mu.Unlock()

	r.log.Info("task removed", logx.String("task", description), logx.Int("tasks", n))
	r.record(entryFor(storage.ActionRemove, removed, nil))
	return nil
}

// List returns a copy of the tasks ordered by start time. Equal start times
// keep insertion order. An empty registry yields an empty, non-nil slice.
func (r *Registry) List() []task.Task {
	r.mu.RLock()
	out := make([]task.Task, len(r.tasks))
	copy(out, r.tasks)
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b task.Task) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out
}

// Len returns the number of stored tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// Subscribe registers l for conflict notifications.
func (r *Registry) Subscribe(l notifier.Listener) {
	r.hub.Subscribe(l)
}

// Hub exposes the notification hub (for history and diagnostics).
func (r *Registry) Hub() *notifier.Hub { return r.hub }

func (r *Registry) indexLocked(description string) int {
	return slices.IndexFunc(r.tasks, func(t task.Task) bool {
		return t.Description == description
	})
}

func (r *Registry) record(e storage.Entry) {
	if r.audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()
	if err := r.audit.Append(ctx, e); err != nil {
		r.log.Warn("audit append failed",
			logx.String("action", e.Action),
			logx.String("task", e.Description),
			logx.Err(err),
		)
	}
}

func entryFor(action string, t task.Task, err error) storage.Entry {
	e := storage.Entry{
		Action:      action,
		Description: t.Description,
		Start:       t.Start.String(),
		End:         t.End.String(),
		Priority:    string(t.Priority),
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
