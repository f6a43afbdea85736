//go:build !sqlite

package storage

import (
	"errors"

	"daysched/pkg/logx"
)

func openSQLite(Config, logx.Logger) (Log, error) {
	return nil, errors.New("storage: sqlite driver not built in (rebuild with -tags sqlite)")
}
