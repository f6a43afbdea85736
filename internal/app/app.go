package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"daysched/internal/agenda"
	"daysched/internal/config"
	"daysched/internal/console"
	"daysched/internal/notifier"
	"daysched/internal/registry"
	"daysched/internal/runtime/supervisor"
	"daysched/internal/storage"
	"daysched/internal/task"
	"daysched/pkg/logx"
)

type App struct {
	cfgm *config.Manager
	sup  *supervisor.Supervisor

	log  logx.Logger
	logs *logx.Service

	store  storage.Log
	reg    *registry.Registry
	digest *agenda.Service
	shell  *console.Shell

	out io.Writer
}

// NewApp loads the config at cfgPath ("" for defaults) and wires the session
// around in/out.
func NewApp(cfgPath string, in io.Reader, out io.Writer) (*App, error) {
	cfgm := config.NewManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Agenda.Enabled {
		if err := agenda.ValidateSpec(cfg.Agenda.Spec); err != nil {
			return nil, err
		}
	}

	logSvc, log, err := logx.New(loggingConfig(cfg))
	if err != nil {
		return nil, err
	}
	log = log.With(logx.String("comp", "app"))

	var store storage.Log
	if sc, enabled, err := auditConfig(cfg); err != nil {
		_ = logSvc.Close()
		return nil, err
	} else if enabled {
		st, err := storage.Open(sc, log.With(logx.String("comp", "storage")))
		if err != nil {
			_ = logSvc.Close()
			return nil, err
		}
		store = st
		log.Info("audit storage enabled", logx.String("driver", sc.Driver))
	}

	out = &syncWriter{w: out}

	hub := notifier.NewHub(notifier.Config{HistorySize: cfg.Notify.HistorySize}, log.With(logx.String("comp", "notifier")))
	opts := []registry.Option{
		registry.WithLogger(log.With(logx.String("comp", "registry"))),
		registry.WithHub(hub),
	}
	if store != nil {
		opts = append(opts, registry.WithAudit(store))
	}
	reg := registry.New(opts...)
	reg.Subscribe(notifier.LogListener(log.With(logx.String("comp", "conflicts")), cfg.Notify.LogRatePerSec))

	digest := agenda.New(agenda.Config{
		Enabled: cfg.Agenda.Enabled,
		Spec:    cfg.Agenda.Spec,
	}, reg, func(lines []string) {
		fmt.Fprintln(out, "\nToday's agenda:")
		for _, l := range lines {
			fmt.Fprintln(out, "  "+l)
		}
	}, log.With(logx.String("comp", "agenda")))

	shell := console.New(in, out, reg, task.Factory{StrictPriority: cfg.Tasks.StrictPriority},
		log.With(logx.String("comp", "console")))

	return &App{
		cfgm:   cfgm,
		log:    log,
		logs:   logSvc,
		store:  store,
		reg:    reg,
		digest: digest,
		shell:  shell,
		out:    out,
	}, nil
}

// Registry exposes the session's task registry.
func (a *App) Registry() *registry.Registry { return a.reg }

// Done is closed when the session ends (shell exit, fatal error or Stop()).
func (a *App) Done() <-chan struct{} {
	if a.sup == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return a.sup.Context().Done()
}

// Err returns the first fatal error observed by the supervisor (if any).
func (a *App) Err() error {
	if a.sup == nil {
		return nil
	}
	return a.sup.Err()
}

func (a *App) Start(ctx context.Context) error {
	a.sup = supervisor.New(ctx,
		supervisor.WithLogger(a.log.With(logx.String("comp", "supervisor"))),
	)

	// transactional config reload: validate before commit/publish
	a.cfgm.SetLogger(a.log.With(logx.String("comp", "config")))
	a.cfgm.SetValidator(func(_ context.Context, cfg *config.Config) error {
		if cfg.Agenda.Enabled {
			if err := agenda.ValidateSpec(cfg.Agenda.Spec); err != nil {
				return err
			}
		}
		_, _, err := auditConfig(cfg)
		return err
	})
	updates := a.cfgm.Subscribe(1)
	a.sup.Go("config.apply", func(ctx context.Context) error {
		defer a.cfgm.Unsubscribe(updates)
		a.applyConfigUpdates(ctx, updates)
		return nil
	})
	a.sup.GoRestart("config.watch", a.cfgm.Watch, 250*time.Millisecond, 30*time.Second)

	if err := a.digest.Start(a.sup.Context()); err != nil {
		a.sup.Cancel()
		return err
	}

	a.sup.Go("console", func(ctx context.Context) error {
		// The session is over once the shell returns, however it returned.
		defer a.sup.Cancel()
		return a.shell.Run(ctx)
	})

	a.log.Info("session started")
	return nil
}

func (a *App) applyConfigUpdates(ctx context.Context, updates <-chan *config.Config) {
	prev := a.cfgm.Get()
	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-updates:
			if !ok {
				return
			}
			changed, attrs := config.SummarizeConfigChange(prev, cfg)
			prev = cfg
			if len(changed) == 0 {
				continue
			}
			if err := a.logs.Apply(loggingConfig(cfg)); err != nil {
				a.log.Warn("logging config not applied", logx.Err(err))
			}
			a.log.Info("config reloaded", append(attrs, logx.Strs("changed", changed))...)
			for _, sec := range changed {
				if sec != "logging" {
					a.log.Warn("config section changed; restart to apply", logx.String("section", sec))
				}
			}
		}
	}
}

func (a *App) Stop(ctx context.Context) error {
	start := time.Now()
	a.digest.Stop(ctx)

	var errs []error
	if a.sup != nil {
		if err := a.sup.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	a.log.Info("session stopped", logx.Duration("took", time.Since(start)), logx.Int("tasks", a.reg.Len()))
	if err := a.logs.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// syncWriter serializes writes from the shell and the digest.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
