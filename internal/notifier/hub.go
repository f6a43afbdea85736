package notifier

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"daysched/pkg/logx"
)

// Hub is a synchronous listener registry. It is safe for concurrent use.
type Hub struct {
	log logx.Logger

	mu        sync.Mutex
	listeners []Listener

	hmu         sync.Mutex
	history     []Event
	historySize int
}

func NewHub(cfg Config, log logx.Logger) *Hub {
	if log.IsZero() {
		log = logx.Nop()
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 50
	}
	return &Hub{log: log, historySize: cfg.HistorySize}
}

// Subscribe appends l. The same function may be registered more than once.
func (h *Hub) Subscribe(l Listener) {
	if l == nil {
		return
	}
	h.mu.Lock()
	h.listeners = append(h.listeners, l)
	n := len(h.listeners)
	h.mu.Unlock()
	h.log.Debug("listener subscribed", logx.Int("listeners", n))
}

// Publish delivers e to every listener in subscription order and returns
// the number of listeners that failed. ID and At are filled when empty.
func (h *Hub) Publish(e Event) int {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	// Snapshot so listeners may subscribe (or publish) without deadlocking.
	h.mu.Lock()
	ls := append([]Listener(nil), h.listeners...)
	h.mu.Unlock()

	h.record(e)

	failed := 0
	for i, l := range ls {
		if err := h.deliver(l, e); err != nil {
			failed++
			h.log.Warn("listener failed",
				logx.Int("listener", i),
				logx.String("event_id", e.ID),
				logx.String("task", e.Task.Description),
				logx.Err(err),
			)
		}
	}
	h.log.Debug("conflict published",
		logx.String("event_id", e.ID),
		logx.String("task", e.Task.Description),
		logx.Int("listeners", len(ls)),
		logx.Int("failed", failed),
	)
	return failed
}

func (h *Hub) deliver(l Listener, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("listener panic", logx.String("event_id", e.ID), logx.Stack(logx.StackTrace(3, 16)))
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()
	return l(e)
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

func (h *Hub) record(e Event) {
	h.hmu.Lock()
	defer h.hmu.Unlock()
	h.history = append(h.history, e)
	if over := len(h.history) - h.historySize; over > 0 {
		h.history = append([]Event(nil), h.history[over:]...)
	}
}

// History returns recent events, oldest first.
func (h *Hub) History() []Event {
	h.hmu.Lock()
	defer h.hmu.Unlock()
	return append([]Event(nil), h.history...)
}
