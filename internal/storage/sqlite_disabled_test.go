//go:build !sqlite

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"daysched/pkg/logx"
)

func TestSQLiteNeedsBuildTag(t *testing.T) {
	t.Parallel()
	_, err := Open(Config{Driver: "sqlite", Path: "audit.db"}, logx.Nop())
	assert.ErrorContains(t, err, "-tags sqlite")
}
