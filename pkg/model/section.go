package model

import "github.com/samber/lo"

// Section is one offering of a course (e.g. "CPSC 221 101") with its weekly meetings
type Section struct {
	Name     string
	Meetings []Meeting
}

// Schedule holds exactly one section per requested course, in request order
type Schedule []Section

// Checks whether any meeting of the section conflicts with any meeting of the other section
func (section Section) Conflicts(other Section) bool {
	return lo.SomeBy(section.Meetings, func(meeting Meeting) bool {
		return lo.SomeBy(other.Meetings, meeting.Conflicts)
	})
}

// Checks whether no two distinct sections of the schedule conflict
func NoConflicts(schedule Schedule) bool {
	for i := range len(schedule) {
		for j := i + 1; j < len(schedule); j++ {
			if schedule[i].Conflicts(schedule[j]) {
				return false
			}
		}
	}
	return true
}

// Checks whether the newest section of a partial schedule conflicts with none of the previous ones.
// Applied to every prefix it is equivalent to NoConflicts on the complete schedule
func newestFits(prefix Schedule) bool {
	if len(prefix) < 2 {
		return true
	}
	newest := prefix[len(prefix)-1]
	return !lo.SomeBy(prefix[:len(prefix)-1], newest.Conflicts)
}
