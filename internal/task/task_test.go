package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTask(t *testing.T, desc, start, end string) Task {
	t.Helper()
	tk, err := New(desc, MustClock(start), MustClock(end), PriorityMedium)
	require.NoError(t, err)
	return tk
}

func TestParseClock(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want Clock
		ok   bool
	}{
		{raw: "00:00", want: 0, ok: true},
		{raw: "07:30", want: 7*60 + 30, ok: true},
		{raw: "23:59", want: 23*60 + 59, ok: true},
		{raw: "24:00"},
		{raw: "25:00"},
		{raw: "12:60"},
		{raw: "7:30"},
		{raw: "07:3"},
		{raw: " 07:30"},
		{raw: "07-30"},
		{raw: "ab:cd"},
		{raw: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParseClock(tt.raw)
			if !tt.ok {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestNewRejectsInvertedOrEmptyInterval(t *testing.T) {
	t.Parallel()
	_, err := New("Nap", MustClock("10:00"), MustClock("09:00"), PriorityLow)
	assert.ErrorIs(t, err, ErrInvalidTask)

	_, err = New("Nap", MustClock("10:00"), MustClock("10:00"), PriorityLow)
	assert.ErrorIs(t, err, ErrInvalidTask)

	_, err = New("   ", MustClock("09:00"), MustClock("10:00"), PriorityLow)
	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestValidateStructLiterals(t *testing.T) {
	t.Parallel()
	ok := Task{Description: "Lunch", Start: MustClock("12:00"), End: MustClock("13:00")}
	assert.NoError(t, ok.Validate())

	for _, tk := range []Task{
		{},
		{Description: "Inverted", Start: MustClock("10:00"), End: MustClock("09:00")},
		{Description: "Huge", Start: 5000, End: 6000},
		{Description: "Late", Start: MustClock("23:00"), End: 24 * 60},
		{Description: "Early", Start: -1, End: MustClock("00:30")},
	} {
		assert.ErrorIs(t, tk.Validate(), ErrInvalidTask, tk.Description)
	}

	assert.True(t, MustClock("23:59").Valid())
	assert.False(t, Clock(24*60).Valid())
	assert.False(t, Clock(-1).Valid())
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "disjoint", a: [2]string{"07:00", "08:00"}, b: [2]string{"09:00", "10:00"}, want: false},
		{name: "partial", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:30", "10:30"}, want: true},
		{name: "contained", a: [2]string{"09:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "identical", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:00", "10:00"}, want: true},
		{name: "touching end to start", a: [2]string{"08:00", "09:00"}, b: [2]string{"09:00", "10:00"}, want: true},
		{name: "one minute apart", a: [2]string{"08:00", "08:59"}, b: [2]string{"09:00", "10:00"}, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := mustTask(t, "a", tt.a[0], tt.a[1])
			b := mustTask(t, "b", tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestOverlapsSymmetricExhaustive(t *testing.T) {
	t.Parallel()
	// Every pair of hour-aligned intervals within a small window.
	var tasks []Task
	for s := 0; s < 6; s++ {
		for e := s + 1; e <= 6; e++ {
			tk, err := New("t", Clock(s*60), Clock(e*60), PriorityLow)
			require.NoError(t, err)
			tasks = append(tasks, tk)
		}
	}
	for _, a := range tasks {
		for _, b := range tasks {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Fatalf("asymmetric overlap: %s vs %s", a, b)
			}
		}
	}
}

func TestFindConflictReturnsFirstMatch(t *testing.T) {
	t.Parallel()
	existing := []Task{
		mustTask(t, "Breakfast", "07:00", "07:30"),
		mustTask(t, "Standup", "09:00", "09:15"),
		mustTask(t, "Review", "09:10", "10:00"),
	}

	got, ok := FindConflict(existing, mustTask(t, "Call", "09:05", "09:20"))
	require.True(t, ok)
	assert.Equal(t, "Standup", got.Description)

	_, ok = FindConflict(existing, mustTask(t, "Lunch", "12:00", "13:00"))
	assert.False(t, ok)

	_, ok = FindConflict(nil, mustTask(t, "Lunch", "12:00", "13:00"))
	assert.False(t, ok)
}

func TestTaskString(t *testing.T) {
	t.Parallel()
	tk, err := Create("Morning Exercise", "07:00", "08:00", "High")
	require.NoError(t, err)
	assert.Equal(t, "07:00 - 08:00: Morning Exercise [High]", tk.String())
}

func TestFactoryCreate(t *testing.T) {
	t.Parallel()

	_, err := Create("Spacewalk", "25:00", "26:00", "Low")
	var tfe *TimeFormatError
	require.True(t, errors.As(err, &tfe))
	assert.Equal(t, "start", tfe.Field)
	assert.Equal(t, "25:00", tfe.Value)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = Create("Spacewalk", "10:00", "1O:30", "Low")
	require.True(t, errors.As(err, &tfe))
	assert.Equal(t, "end", tfe.Field)

	_, err = Create("Spacewalk", "11:00", "10:00", "Low")
	assert.ErrorIs(t, err, ErrInvalidTask)
	assert.NotErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFactoryPriority(t *testing.T) {
	t.Parallel()

	tk, err := Create("Log", "10:00", "10:30", "whenever")
	require.NoError(t, err)
	assert.Equal(t, Priority("whenever"), tk.Priority)
	assert.False(t, tk.Priority.Known())

	strict := Factory{StrictPriority: true}
	_, err = strict.Create("Log", "10:00", "10:30", "whenever")
	assert.ErrorIs(t, err, ErrInvalidTask)

	tk, err = strict.Create("Log", "10:00", "10:30", "high")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, tk.Priority)
	assert.True(t, tk.Priority.Known())
}
