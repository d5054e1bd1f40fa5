package shift

// FindOverlapping returns the first shift in shifts whose [Start,End)
// range intersects [start,end), in stored collection order.
// Returns nil when no shift matches. It never errors: callers route
// clicks with the result, and "no match" means the cell is free.
func FindOverlapping(shifts []*Shift, start, end string) *Shift {
	for _, s := range shifts {
		if TimesOverlap(s.Start, s.End, start, end) {
			return s
		}
	}
	return nil
}

// FindAllOverlapping returns every shift intersecting [start,end),
// preserving collection order. Multiple matches are valid when several
// staff work the same hours; the grid stacks all of them.
func FindAllOverlapping(shifts []*Shift, start, end string) []*Shift {
	var matches []*Shift
	for _, s := range shifts {
		if TimesOverlap(s.Start, s.End, start, end) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Conflict describes two same-day shifts that double-book a staff member.
type Conflict struct {
	StaffID int64
	A, B    *Shift
}

// StaffConflicts scans same-day shifts for pairs that overlap in time and
// share a staff member. Conflicts are advisory: multi-staff shifts may
// legitimately overlap, so detection reports rather than blocks.
func StaffConflicts(shifts []*Shift) []Conflict {
	var conflicts []Conflict
	for i, a := range shifts {
		for _, b := range shifts[i+1:] {
			if !a.OverlapsWith(b) {
				continue
			}
			for _, id := range a.StaffIDs {
				if b.HasStaff(id) {
					conflicts = append(conflicts, Conflict{StaffID: id, A: a, B: b})
				}
			}
		}
	}
	return conflicts
}

// ConflictsWith returns the advisory conflicts a candidate shift would
// create against existing shifts on the same day. The candidate itself
// (matched by id for saved shifts) is skipped so edits do not conflict
// with their own previous version.
func ConflictsWith(candidate *Shift, existing []*Shift) []Conflict {
	var conflicts []Conflict
	for _, other := range existing {
		if candidate.IsSaved() && other.ID == candidate.ID {
			continue
		}
		if !candidate.OverlapsWith(other) {
			continue
		}
		for _, id := range candidate.StaffIDs {
			if other.HasStaff(id) {
				conflicts = append(conflicts, Conflict{StaffID: id, A: candidate, B: other})
			}
		}
	}
	return conflicts
}
