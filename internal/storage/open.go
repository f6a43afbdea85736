package storage

import (
	"context"
	"fmt"
	"strings"

	"daysched/pkg/logx"
)

// Log is an append-only audit sink.
type Log interface {
	Append(ctx context.Context, e Entry) error
	Close() error
}

// Open returns the Log selected by cfg.Driver, or (nil, nil) when auditing
// is off.
func Open(cfg Config, log logx.Logger) (Log, error) {
	if log.IsZero() {
		log = logx.Nop()
	}
	switch driver := strings.ToLower(strings.TrimSpace(cfg.Driver)); driver {
	case "", "none":
		return nil, nil
	case "file":
		return openFile(cfg.Path, log)
	case "sqlite", "sqlite3":
		return openSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}
