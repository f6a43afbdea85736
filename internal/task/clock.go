package task

import (
	"fmt"
	"regexp"
	"strconv"
)

// Clock is a local wall-clock time of day, in minutes since midnight.
type Clock int

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

var reHHMM = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// At builds a Clock from hour and minute. Out-of-range values are rejected.
func At(hour, minute int) (Clock, error) {
	if hour < 0 || hour >= hoursPerDay || minute < 0 || minute >= minutesPerHour {
		return 0, &TimeFormatError{Value: fmt.Sprintf("%d:%d", hour, minute)}
	}
	return Clock(hour*minutesPerHour + minute), nil
}

// ParseClock parses strict 24h "HH:MM" text. Surrounding whitespace is not accepted.
func ParseClock(s string) (Clock, error) {
	m := reHHMM.FindStringSubmatch(s)
	if len(m) != 3 {
		return 0, &TimeFormatError{Value: s}
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	c, err := At(hh, mm)
	if err != nil {
		return 0, &TimeFormatError{Value: s}
	}
	return c, nil
}

// MustClock is ParseClock for constants and tests.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether c falls within 00:00..23:59.
func (c Clock) Valid() bool { return c >= 0 && c < hoursPerDay*minutesPerHour }

func (c Clock) Hour() int   { return int(c) / minutesPerHour }
func (c Clock) Minute() int { return int(c) % minutesPerHour }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
