package task

// Factory turns raw field text into a Task.
//
// The zero value accepts any priority text as-is. StrictPriority rejects
// anything other than Low/Medium/High (case-insensitive) with ErrInvalidTask.
type Factory struct {
	StrictPriority bool
}

// Create parses start/end as strict HH:MM and builds the task.
// Parse failures return *TimeFormatError and no task is built.
func (f Factory) Create(description, startText, endText, priority string) (Task, error) {
	start, err := ParseClock(startText)
	if err != nil {
		return Task{}, &TimeFormatError{Field: "start", Value: startText}
	}
	end, err := ParseClock(endText)
	if err != nil {
		return Task{}, &TimeFormatError{Field: "end", Value: endText}
	}

	p := Priority(priority)
	if f.StrictPriority {
		canon, ok := p.Canonical()
		if !ok {
			return Task{}, invalid("unknown priority %q (use Low, Medium or High)", priority)
		}
		p = canon
	}
	return New(description, start, end, p)
}

// Create is Factory{}.Create.
func Create(description, startText, endText, priority string) (Task, error) {
	return Factory{}.Create(description, startText, endText, priority)
}
