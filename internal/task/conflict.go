package task

// FindConflict returns the first task in existing (in slice order) that
// overlaps candidate.
func FindConflict(existing []Task, candidate Task) (Task, bool) {
	for _, t := range existing {
		if t.Overlaps(candidate) {
			return t, true
		}
	}
	return Task{}, false
}
