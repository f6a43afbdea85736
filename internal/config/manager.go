package config

import (
	"context"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"daysched/pkg/logx"
)

// Manager holds the committed config and fans reloads out to subscribers.
type Manager struct {
	path     string
	debounce time.Duration

	log      logx.Logger
	validate func(ctx context.Context, cfg *Config) error

	mu  sync.RWMutex
	cfg *Config

	// subsMu is held while sending so Unsubscribe never closes a channel
	// mid-send.
	subsMu sync.Mutex
	subs   []chan *Config
}

// NewManager returns a manager for the file at path; "" means defaults only.
func NewManager(path string) *Manager {
	return &Manager{path: path, debounce: 250 * time.Millisecond, log: logx.Nop()}
}

func (m *Manager) SetLogger(log logx.Logger) { m.log = log }

// SetValidator installs a hook that must accept a reloaded config before it
// is committed and published.
func (m *Manager) SetValidator(fn func(ctx context.Context, cfg *Config) error) {
	m.validate = fn
}

func (m *Manager) Path() string { return m.path }

// Parse reads, decodes and validates the file without committing it.
func (m *Manager) Parse() (*Config, error) {
	if strings.TrimSpace(m.path) == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(m.path, data)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load parses and commits the file.
func (m *Manager) Load() (*Config, error) {
	cfg, err := m.Parse()
	if err != nil {
		return nil, err
	}
	m.commit(cfg)
	return cfg, nil
}

func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

func (m *Manager) commit(cfg *Config) {
	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()
}

// Subscribe returns a channel receiving every committed reload. A slow
// subscriber loses the oldest queued config, never the newest.
func (m *Manager) Subscribe(buffer int) chan *Config {
	ch := make(chan *Config, max(buffer, 1))
	m.subsMu.Lock()
	m.subs = append(m.subs, ch)
	m.subsMu.Unlock()
	return ch
}

func (m *Manager) Unsubscribe(ch chan *Config) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for i, s := range m.subs {
		if s == ch {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			close(ch)
			return
		}
	}
}

func (m *Manager) publish(cfg *Config) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for _, ch := range m.subs {
		for delivered := false; !delivered; {
			select {
			case ch <- cfg:
				delivered = true
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	}
}

// reload is the debounced body of Watch: parse, skip when nothing changed,
// validate, then commit and publish.
func (m *Manager) reload(ctx context.Context) {
	cfg, err := m.Parse()
	if err != nil {
		m.log.Warn("config parse failed", logx.String("path", m.path), logx.Err(err))
		return
	}
	if reflect.DeepEqual(cfg, m.Get()) {
		m.log.Debug("config unchanged", logx.String("path", m.path))
		return
	}
	if m.validate != nil {
		vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := m.validate(vctx, cfg)
		cancel()
		if err != nil {
			m.log.Warn("config rejected", logx.String("path", m.path), logx.Err(err))
			return
		}
	}
	m.commit(cfg)
	m.publish(cfg)
	m.log.Debug("config published", logx.String("path", m.path))
}
