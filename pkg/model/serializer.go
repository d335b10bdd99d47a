package model

import "github.com/samber/lo"

// ScheduleEntry maps a section name to its meetings, e.g. {"CPSC 221 101": [{term, day, start, end}, ...]}
type ScheduleEntry map[string][]Meeting

// One entry per course of the schedule, in request order
func Serialize(schedule Schedule) []ScheduleEntry {
	return lo.Map(schedule, func(section Section, _ int) ScheduleEntry {
		meetings := make([]Meeting, len(section.Meetings))
		copy(meetings, section.Meetings)
		return ScheduleEntry{section.Name: meetings}
	})
}

func SerializeAll(schedules []Schedule) [][]ScheduleEntry {
	return lo.Map(schedules, func(schedule Schedule, _ int) []ScheduleEntry {
		return Serialize(schedule)
	})
}
