//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daysched/pkg/logx"
)

func TestSQLiteLogAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "audit.db")
	st, err := Open(Config{Driver: "sqlite", Path: path, BusyTimeout: time.Second}, logx.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, st.Append(ctx, Entry{Action: ActionAdd, Description: "Team Meeting", Start: "09:00", End: "10:00", Priority: "Medium"}))
	require.NoError(t, st.Append(ctx, Entry{Action: ActionNotFound, Description: "Nap", Error: "task not found"}))
	require.NoError(t, st.Close())
	assert.ErrorIs(t, st.Append(ctx, Entry{Action: ActionAdd, Description: "late"}), ErrClosed)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM audit`).Scan(&n))
	assert.Equal(t, 2, n)

	var priority sql.NullString
	require.NoError(t, db.QueryRow(`SELECT priority FROM audit WHERE action = ?`, ActionNotFound).Scan(&priority))
	assert.False(t, priority.Valid)
}
