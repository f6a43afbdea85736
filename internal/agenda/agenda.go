// Package agenda renders the day's schedule and emits it as a digest on a cron trigger.
package agenda

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"daysched/internal/task"
	"daysched/pkg/logx"
)

// EmptyMessage is printed instead of a listing when no tasks exist.
const EmptyMessage = "No tasks scheduled for the day."

type Config struct {
	Enabled bool
	Spec    string // 5-field cron or descriptor, local time
}

// Lister is the read side of the registry.
type Lister interface {
	List() []task.Task
}

// Sink receives rendered digest lines.
type Sink func(lines []string)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSpec reports whether spec is a schedule the digest accepts.
func ValidateSpec(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return fmt.Errorf("agenda spec required")
	}
	if _, err := parser.Parse(spec); err != nil {
		return fmt.Errorf("invalid agenda spec %q: %w", spec, err)
	}
	return nil
}

// Render formats tasks one per line, or EmptyMessage when there are none.
func Render(tasks []task.Task) []string {
	if len(tasks) == 0 {
		return []string{EmptyMessage}
	}
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.String())
	}
	return out
}

type Service struct {
	cfg  Config
	list Lister
	sink Sink
	log  logx.Logger

	mu      sync.Mutex
	c       *cron.Cron
	unwatch func() bool
}

func New(cfg Config, list Lister, sink Sink, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{cfg: cfg, list: list, sink: sink, log: log}
}

// Start registers the digest job. It stops on its own once ctx ends.
// Disabled config is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cfg.Enabled || s.c != nil {
		return nil
	}
	if err := ValidateSpec(s.cfg.Spec); err != nil {
		return err
	}

	c := cron.New(cron.WithParser(parser), cron.WithLocation(time.Local))
	if _, err := c.AddFunc(s.cfg.Spec, s.Fire); err != nil {
		return fmt.Errorf("agenda schedule: %w", err)
	}
	c.Start()
	s.c = c
	s.unwatch = context.AfterFunc(ctx, func() { s.Stop(context.Background()) })

	next := c.Entries()[0].Next
	s.log.Info("agenda digest scheduled", logx.String("spec", s.cfg.Spec), logx.Time("next", next))
	return nil
}

// Stop stops triggering; a digest already running finishes first unless ctx ends.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	c, unwatch := s.c, s.unwatch
	s.c, s.unwatch = nil, nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	unwatch()
	select {
	case <-c.Stop().Done():
	case <-ctx.Done():
	}
	s.log.Debug("agenda digest stopped")
}

// Fire renders the current schedule into the sink.
func (s *Service) Fire() {
	tasks := s.list.List()
	s.log.Debug("agenda digest", logx.Int("tasks", len(tasks)))
	if s.sink != nil {
		s.sink(Render(tasks))
	}
}
