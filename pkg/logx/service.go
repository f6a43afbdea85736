package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// setupOnce guards zerolog's package-level settings.
var setupOnce sync.Once

// DefaultFilePath is used when file logging is enabled without a path.
const DefaultFilePath = "./daysched.log"

type Config struct {
	Level   string
	Console bool
	File    FileConfig
}

type FileConfig struct {
	Enabled bool
	Path    string
}

// Service owns the log sinks and hands out live Loggers.
type Service struct {
	mu   sync.Mutex
	file *os.File

	root atomic.Pointer[zerolog.Logger]
}

// New builds a Service from cfg and returns it with its root Logger. A file
// sink that cannot be opened is reported and the service stays silent.
func New(cfg Config) (*Service, Logger, error) {
	setupOnce.Do(func() {
		zerolog.ErrorFieldName = "err"
		zerolog.TimeFieldFormat = consoleTimeFormat
	})

	s := &Service{}
	nop := zerolog.Nop()
	s.root.Store(&nop)
	err := s.Apply(cfg)
	return s, Logger{svc: s}, err
}

func (s *Service) current() zerolog.Logger {
	if zl := s.root.Load(); zl != nil {
		return *zl
	}
	return zerolog.Nop()
}

func (s *Service) Logger() Logger { return Logger{svc: s} }

// Apply swaps sinks and level. When the new file sink cannot be opened the
// previous sinks stay in place.
func (s *Service) Apply(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		writers []io.Writer
		file    *os.File
	)
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}
		cw.FormatCaller = func(i any) string {
			c, _ := i.(string)
			return c
		}
		writers = append(writers, cw)
	}
	if cfg.File.Enabled {
		path := strings.TrimSpace(cfg.File.Path)
		if path == "" {
			path = DefaultFilePath
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %q: %w", path, err)
		}
		file = f
		writers = append(writers, zerolog.SyncWriter(f))
	}

	zl := zerolog.Nop()
	if len(writers) > 0 {
		zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			Level(parseLevel(cfg.Level, zerolog.InfoLevel)).
			With().Timestamp().Logger()
	}
	s.root.Store(&zl)

	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = file
	return nil
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	nop := zerolog.Nop()
	s.root.Store(&nop)
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func parseLevel(raw string, def zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return def
	}
}
