//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"daysched/pkg/logx"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	at          TEXT NOT NULL,
	action      TEXT NOT NULL,
	description TEXT NOT NULL,
	start       TEXT,
	end_time    TEXT,
	priority    TEXT,
	conflict    TEXT,
	err         TEXT
);
CREATE INDEX IF NOT EXISTS audit_at ON audit(at);
`

const insertAudit = `INSERT INTO audit(at, action, description, start, end_time, priority, conflict, err)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)`

type sqliteLog struct {
	mu     sync.RWMutex
	db     *sql.DB
	insert *sql.Stmt
}

func openSQLite(cfg Config, log logx.Logger) (Log, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("storage: path is required for the sqlite driver")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent adds.
	db.SetMaxOpenConns(1)

	pragmas := []string{"PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL"}
	if cfg.BusyTimeout > 0 {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			log.Warn("sqlite pragma failed", logx.String("pragma", p), logx.Err(err))
		}
	}

	if _, err := db.Exec(auditSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: sqlite schema: %w", err)
	}
	stmt, err := db.Prepare(insertAudit)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: sqlite prepare: %w", err)
	}
	log.Debug("audit database opened", logx.String("path", path))
	return &sqliteLog{db: db, insert: stmt}, nil
}

func (l *sqliteLog) Append(ctx context.Context, e Entry) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.db == nil {
		return ErrClosed
	}
	_, err := l.insert.ExecContext(ctx,
		e.At.Format(time.RFC3339Nano), e.Action, e.Description,
		optional(e.Start), optional(e.End), optional(e.Priority), optional(e.Conflict), optional(e.Error),
	)
	return err
}

func (l *sqliteLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := errors.Join(l.insert.Close(), l.db.Close())
	l.db, l.insert = nil, nil
	return err
}

// optional maps blank columns to NULL.
func optional(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}
