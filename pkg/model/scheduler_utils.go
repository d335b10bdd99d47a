package model

import "github.com/samber/lo"

// Checks that no generated schedule holds two conflicting sections
func verify(schedules []Schedule) bool {
	return lo.EveryBy(schedules, NoConflicts)
}
