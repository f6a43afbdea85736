package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daysched/internal/task"
	"daysched/pkg/logx"
)

type staticList []task.Task

func (s staticList) List() []task.Task { return s }

func TestRender(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{EmptyMessage}, Render(nil))

	a, err := task.Create("Morning Exercise", "07:00", "08:00", "High")
	require.NoError(t, err)
	b, err := task.Create("Team Meeting", "09:00", "10:00", "Medium")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"07:00 - 08:00: Morning Exercise [High]",
		"09:00 - 10:00: Team Meeting [Medium]",
	}, Render([]task.Task{a, b}))
}

func TestValidateSpec(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"0 7 * * *", "@daily", "30 6 * * 1-5"} {
		assert.NoError(t, ValidateSpec(ok), ok)
	}
	for _, bad := range []string{"", "every morning", "0 7 * *", "0 0 7 * * *"} {
		assert.Error(t, ValidateSpec(bad), bad)
	}
}

func TestFireUsesSink(t *testing.T) {
	t.Parallel()
	a, err := task.Create("Lunch", "12:00", "13:00", "Low")
	require.NoError(t, err)

	var got []string
	s := New(Config{}, staticList{a}, func(lines []string) { got = lines }, logx.Nop())
	s.Fire()
	assert.Equal(t, []string{"12:00 - 13:00: Lunch [Low]"}, got)
}

func TestStartStop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	disabled := New(Config{Enabled: false, Spec: "bogus"}, staticList{}, nil, logx.Nop())
	require.NoError(t, disabled.Start(ctx))
	disabled.Stop(ctx)

	bad := New(Config{Enabled: true, Spec: "bogus"}, staticList{}, nil, logx.Nop())
	assert.Error(t, bad.Start(ctx))

	s := New(Config{Enabled: true, Spec: "@daily"}, staticList{}, nil, logx.Nop())
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Start(ctx), "second start is a no-op")
	s.Stop(ctx)
	s.Stop(ctx)
}

func TestStartStopsWithContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	s := New(Config{Enabled: true, Spec: "@daily"}, staticList{}, nil, logx.Nop())
	require.NoError(t, s.Start(ctx))
	assert.True(t, s.running())

	cancel()
	assert.Eventually(t, func() bool { return !s.running() }, 2*time.Second, 10*time.Millisecond)
	s.Stop(context.Background())
}

func (s *Service) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c != nil
}
