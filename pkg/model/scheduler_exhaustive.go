package model

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Materializes the whole cross product before filtering it. Peak memory grows with the product of candidate counts
type exhaustiveScheduler struct{}

func NewExhaustiveScheduler() Scheduler {
	return &exhaustiveScheduler{}
}

func (scheduler *exhaustiveScheduler) Generate(domains [][]Section) []Schedule {
	return lo.Filter(CrossProduct(domains), func(schedule Schedule, _ int) bool {
		return NoConflicts(schedule)
	})
}

func (scheduler *exhaustiveScheduler) Stream(domains [][]Section) iter.Seq[Schedule] {
	return slices.Values(scheduler.Generate(domains))
}

func (scheduler *exhaustiveScheduler) Verify(schedules []Schedule) bool {
	return verify(schedules)
}
