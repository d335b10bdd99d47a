package model

// Meeting is a single weekly block of a section. Start and End are zero-padded 24-hour
// strings (e.g. "09:00") and are compared lexicographically, never parsed
type Meeting struct {
	Term  string `json:"term" mapstructure:"term" csv:"term"`
	Day   string `json:"day" mapstructure:"day" csv:"day"`
	Start string `json:"start" mapstructure:"start" csv:"start"`
	End   string `json:"end" mapstructure:"end" csv:"end"`
}

// Checks whether two meetings overlap on the same term and day.
// A block starting exactly when the other ends does not conflict
func (meeting Meeting) Conflicts(other Meeting) bool {
	return meeting.overlaps(other) || other.overlaps(meeting)
}

// Directional test: other starts inside [start, end) or ends inside (start, end].
// It misses the case where other strictly contains meeting, hence Conflicts checks both ways
func (meeting Meeting) overlaps(other Meeting) bool {
	return meeting.Day == other.Day &&
		meeting.Term == other.Term &&
		((meeting.Start <= other.Start && other.Start < meeting.End) ||
			(meeting.Start < other.End && other.End <= meeting.End))
}
