package console

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daysched/internal/registry"
	"daysched/internal/task"
	"daysched/pkg/logx"
)

func TestTokenizeLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "list", want: []string{"list"}},
		{in: `add "Team Meeting" 09:00 10:00 Medium`, want: []string{"add", "Team Meeting", "09:00", "10:00", "Medium"}},
		{in: `remove 'Team Meeting'`, want: []string{"remove", "Team Meeting"}},
		{in: `add Say\ hi 09:00 10:00 Low`, want: []string{"add", "Say hi", "09:00", "10:00", "Low"}},
		{in: `add "" 09:00 10:00 Low`, want: []string{"add", "", "09:00", "10:00", "Low"}},
		{in: "  list \t ", want: []string{"list"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenizeLine(tt.in), tt.in)
	}
}

func TestParseAdd(t *testing.T) {
	t.Parallel()
	a, ok := parseAdd([]string{"Morning", "Exercise", "07:00", "08:00", "High"})
	require.True(t, ok)
	assert.Equal(t, addArgs{Description: "Morning Exercise", Start: "07:00", End: "08:00", Priority: "High"}, a)

	_, ok = parseAdd([]string{"07:00", "08:00", "High"})
	assert.False(t, ok)
}

func newShell(t *testing.T) (*Shell, *strings.Builder, *registry.Registry) {
	t.Helper()
	var out strings.Builder
	reg := registry.New()
	return New(strings.NewReader(""), &out, reg, task.Factory{}, logx.Nop()), &out, reg
}

func TestSessionTranscript(t *testing.T) {
	t.Parallel()
	sh, out, reg := newShell(t)

	for _, line := range []string{
		"list",
		`add "Morning Exercise" 07:00 08:00 High`,
		"add Team Meeting 09:00 10:00 Medium",
		"add Training Session 09:30 10:30 High",
		"add Spacewalk 25:00 26:00 Low",
		"add Nap 14:00 13:00 Low",
		"add Team Meeting 18:00 19:00 Low",
		"list",
		"remove Morning Exercise",
		"remove Morning Exercise",
	} {
		require.True(t, sh.Exec(line), line)
	}
	assert.False(t, sh.Exec("quit"))

	want := strings.Join([]string{
		"No tasks scheduled for the day.",
		"Task added successfully.",
		"Task added successfully.",
		"Task conflicts with existing schedule - Training Session",
		`Error: invalid start time format "25:00" (use HH:MM, 00:00-23:59)`,
		"Error: invalid task: start time 14:00 must be before end time 13:00",
		`Error: task "Team Meeting" already exists`,
		"07:00 - 08:00: Morning Exercise [High]",
		"09:00 - 10:00: Team Meeting [Medium]",
		"Task removed successfully.",
		`Error: task "Morning Exercise" not found`,
		"Goodbye.",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, reg.Len())
}

func TestDescriptionSpacingSurvives(t *testing.T) {
	t.Parallel()
	sh, out, reg := newShell(t)

	sh.Exec(`add "Team  Meeting" 09:00 10:00 Medium`)
	sh.Exec("add Code\t review   11:00 12:00 Low")
	require.Equal(t, []string{"Team  Meeting", "Code\t review"}, []string{reg.List()[0].Description, reg.List()[1].Description})

	sh.Exec("remove Team  Meeting")
	sh.Exec("rm   Code\t review  ")
	assert.Equal(t, "Task added successfully.\nTask added successfully.\nTask removed successfully.\nTask removed successfully.\n", out.String())
	assert.Zero(t, reg.Len())
}

func TestPlainRestAndDropLastFields(t *testing.T) {
	t.Parallel()
	rest, ok := plainRest("remove  Team  Meeting ")
	require.True(t, ok)
	assert.Equal(t, "Team  Meeting", rest)

	_, ok = plainRest(`remove "Team  Meeting"`)
	assert.False(t, ok)

	rest, ok = plainRest("list")
	assert.True(t, ok)
	assert.Empty(t, rest)

	assert.Equal(t, "Team  Meeting", dropLastFields("Team  Meeting 09:00\t10:00  Medium", 3))
	assert.Empty(t, dropLastFields("09:00 10:00 Low", 3))
}

func TestConflictsCommand(t *testing.T) {
	t.Parallel()
	sh, out, _ := newShell(t)

	sh.Exec("conflicts")
	assert.Contains(t, out.String(), "No conflicts recorded.")

	sh.Exec("add A 08:00 09:00 Low")
	sh.Exec("add B 09:00 10:00 Low")
	sh.Exec("conflicts")
	assert.Contains(t, out.String(), "Task conflicts with existing schedule - B (blocked by A)")
}

func TestUsageAndUnknown(t *testing.T) {
	t.Parallel()
	sh, out, _ := newShell(t)
	sh.Exec("add only three args")
	sh.Exec("remove")
	sh.Exec("dance")
	sh.Exec("help")

	s := out.String()
	assert.Contains(t, s, "Usage: add")
	assert.Contains(t, s, "Usage: remove")
	assert.Contains(t, s, `Unknown command "dance"`)
	assert.Contains(t, s, "Commands:")
}

func TestRunUntilEOF(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	reg := registry.New()
	in := strings.NewReader("add Lunch 12:00 13:00 Low\nlist\n")
	sh := New(in, &out, reg, task.Factory{}, logx.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sh.Run(ctx))
	assert.Contains(t, out.String(), "12:00 - 13:00: Lunch [Low]")
	assert.Equal(t, 1, reg.Len())
}

func TestRunStopsOnQuit(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	sh := New(strings.NewReader("quit\nadd Lunch 12:00 13:00 Low\n"), &out, registry.New(), task.Factory{}, logx.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sh.Run(ctx))
	assert.NotContains(t, out.String(), "Task added")
}
