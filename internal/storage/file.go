package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"daysched/pkg/logx"
)

// fileLog writes one JSON object per line.
type fileLog struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
}

func openFile(path string, log logx.Logger) (Log, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage: path is required for the file driver")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	log.Debug("audit file opened", logx.String("path", path))
	return &fileLog{f: f, enc: json.NewEncoder(f)}, nil
}

func (l *fileLog) Append(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return ErrClosed
	}
	return l.enc.Encode(e)
}

func (l *fileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f, l.enc = nil, nil
	return err
}
