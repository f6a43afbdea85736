// Package supervisor runs the session's long-lived goroutines under one
// context: the first failure cancels the rest, panics become errors and
// watcher-style loops can be restarted with backoff.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"daysched/pkg/logx"
)

type Supervisor struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	log    logx.Logger

	active   atomic.Int64
	firstErr atomic.Pointer[error]

	waitOnce sync.Once
	done     chan struct{}
}

type Option func(*Supervisor)

func WithLogger(log logx.Logger) Option {
	return func(s *Supervisor) { s.log = log }
}

func New(parent context.Context, opts ...Option) *Supervisor {
	base, cancel := context.WithCancel(parent)
	group, ctx := errgroup.WithContext(base)
	s := &Supervisor{
		ctx:    ctx,
		cancel: cancel,
		group:  group,
		log:    logx.Nop(),
		done:   make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Context is cancelled by Cancel, Stop, the parent, or the first failure.
func (s *Supervisor) Context() context.Context { return s.ctx }

func (s *Supervisor) Cancel() { s.cancel() }

// Err returns the first failure, if any.
func (s *Supervisor) Err() error {
	if p := s.firstErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Active is the number of goroutines still running.
func (s *Supervisor) Active() int64 { return s.active.Load() }

// Go runs fn until it returns. A non-nil error other than context.Canceled
// fails the supervisor and cancels every sibling.
func (s *Supervisor) Go(name string, fn func(ctx context.Context) error) {
	if fn == nil {
		return
	}
	s.active.Add(1)
	s.group.Go(func() error {
		defer s.active.Add(-1)
		s.log.Debug("goroutine started", logx.String("name", name))
		err := s.call(name, fn)
		s.log.Debug("goroutine stopped", logx.String("name", name))
		if err == nil || errors.Is(err, context.Canceled) {
			return nil
		}
		err = fmt.Errorf("%s: %w", name, err)
		s.firstErr.CompareAndSwap(nil, &err)
		return err
	})
}

// GoRestart keeps fn running: an error or panic restarts it after a jittered
// exponential backoff between minBackoff and maxBackoff; a nil return or a
// cancelled context ends it.
func (s *Supervisor) GoRestart(name string, fn func(ctx context.Context) error, minBackoff, maxBackoff time.Duration) {
	if fn == nil {
		return
	}
	if minBackoff <= 0 {
		minBackoff = 250 * time.Millisecond
	}
	maxBackoff = max(maxBackoff, minBackoff)

	s.Go(name, func(ctx context.Context) error {
		backoff := minBackoff
		for {
			started := time.Now()
			err := s.call(name, fn)
			if err == nil || ctx.Err() != nil {
				return nil
			}
			if time.Since(started) > maxBackoff {
				backoff = minBackoff
			}
			wait := backoff + time.Duration(time.Now().UnixNano()%(int64(backoff)/5+1))
			s.log.Warn("goroutine restarting", logx.String("name", name), logx.Duration("backoff", wait), logx.Err(err))

			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return nil
			case <-t.C:
			}
			backoff = min(backoff*2, maxBackoff)
		}
	})
}

func (s *Supervisor) call(name string, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("goroutine panicked", logx.String("name", name), logx.Any("panic", r), logx.Stack(string(debug.Stack())))
			err = fmt.Errorf("panic in %s: %v", name, r)
		}
	}()
	return fn(s.ctx)
}

// Stop cancels the context and waits for every goroutine, bounded by ctx.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.cancel()
	return s.Wait(ctx)
}

// Wait blocks until every goroutine has returned or ctx ends.
func (s *Supervisor) Wait(ctx context.Context) error {
	s.waitOnce.Do(func() {
		go func() {
			_ = s.group.Wait()
			close(s.done)
		}()
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return s.Err()
	}
}
