package model

import "iter"

// Rejects a partial combination as soon as its newest section conflicts with an earlier one.
// Since conflicts are pairwise, a combination is conflict-free iff every prefix is, so the accepted
// schedules and their order are the same as with the exhaustive strategy
type pruningScheduler struct{}

func NewPruningScheduler() Scheduler {
	return &pruningScheduler{}
}

func (scheduler *pruningScheduler) Generate(domains [][]Section) []Schedule {
	return collect(scheduler.Stream(domains))
}

func (scheduler *pruningScheduler) Stream(domains [][]Section) iter.Seq[Schedule] {
	return newCombinationGenerator(domains).Combinations([]func(prefix Schedule) bool{newestFits})
}

func (scheduler *pruningScheduler) Verify(schedules []Schedule) bool {
	return verify(schedules)
}
